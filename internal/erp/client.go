package erp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// IST is the campus timezone; all request dates and day names are derived
// from it.
var IST = time.FixedZone("IST", 5*60*60+30*60) // IST is UTC+5:30

const (
	loginPath      = "/login/validate"
	attendancePath = "/api/Attendance/getDtaForStupage"
	timetablePath  = "/api/Timetable/get"
	menuPath       = "/api/mess-management/get-student-menu-list"

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
)

// AuthError is returned when the ERP rejects the credentials.
type AuthError struct {
	Email string
	Code  string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("login failed for %s: %s", e.Email, e.Code)
}

// Client talks to the ERP portal. It holds no session state; Login returns
// a Session that does.
type Client struct {
	baseURL string
	timeout time.Duration
}

func NewClient(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), timeout: 15 * time.Second}
}

// Session is one authenticated login: the cookie-bound HTTP client plus
// the progression identifiers and student id extracted from the login
// response. It is valid for a single report run.
type Session struct {
	http        *http.Client
	baseURL     string
	Progression Progression
	StudentID   string
}

// Login validates the credentials and establishes a session. The two
// credential-rejection codes the ERP is known to send surface as
// *AuthError; anything else (transport error, non-2xx) is a plain error.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, errors.New("email and password must be set")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	s := &Session{
		http:    &http.Client{Timeout: c.timeout, Jar: jar},
		baseURL: c.baseURL,
	}

	var res loginResponse
	if err := s.postJSON(ctx, loginPath, loginRequest{DType: "M", Email: email, Password: password}, &res); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	data := res.Output.Data
	if data.Code == "INCRT_CRD" || data.Code == "INVALID_CRED" {
		return nil, &AuthError{Email: email, Code: data.Code}
	}
	if len(data.ProgressionData) > 0 {
		s.Progression = data.ProgressionData[0]
	}
	if students := data.LoginDetails.Student; len(students) > 0 {
		s.StudentID = students[0].StuID
	}
	return s, nil
}

func (s *Session) FetchAttendance(ctx context.Context) (*AttendancePayload, error) {
	if s.StudentID == "" {
		return nil, errors.New("session has no student id")
	}
	body := attendanceRequest{
		Progression: s.Progression,
		StuID:       s.StudentID,
		IsFE:        true,
		IsForWeb:    true,
		IsFrAbLg:    true,
	}
	var payload AttendancePayload
	if err := s.postJSON(ctx, attendancePath, body, &payload); err != nil {
		return nil, fmt.Errorf("fetch attendance: %w", err)
	}
	return &payload, nil
}

// FetchTimetable requests the schedule for now's calendar day, cancelled
// periods included.
func (s *Session) FetchTimetable(ctx context.Context, now time.Time) (*TimetablePayload, error) {
	today := now.Format("2006-01-02")
	body := timetableRequest{
		Progression:   s.Progression,
		EnableV2:      true,
		Start:         today,
		End:           today,
		UserTime:      now.Format("02-01-2006, 03:04 PM"),
		ScheduleType:  "slctdSchdl",
		ShowCancelled: true,
		FromTimetable: true,
	}
	var payload TimetablePayload
	if err := s.postJSON(ctx, timetablePath, body, &payload); err != nil {
		return nil, fmt.Errorf("fetch timetable: %w", err)
	}
	return &payload, nil
}

// FetchMenu requests the cafeteria menu for now's weekday, sent as the
// ERP's 3-letter uppercase day name.
func (s *Session) FetchMenu(ctx context.Context, now time.Time) (*MenuPayload, error) {
	if s.StudentID == "" {
		return nil, errors.New("session has no student id")
	}
	body := menuRequest{
		StuID: s.StudentID,
		InID:  s.Progression.InID,
		Day:   strings.ToUpper(now.Format("Mon")),
	}
	var payload MenuPayload
	if err := s.postJSON(ctx, menuPath, body, &payload); err != nil {
		return nil, fmt.Errorf("fetch cafeteria menu: %w", err)
	}
	return &payload, nil
}

func (s *Session) postJSON(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Origin", s.baseURL)

	res, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("status=%d body=%s", res.StatusCode, raw)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
