package erp

import "encoding/json"

// Progression carries the academic-context identifiers returned at login.
// Every subsequent API call is scoped by these.
type Progression struct {
	InID     string `json:"InId"`
	PrID     string `json:"PrID"`
	CrID     string `json:"CrID"`
	DeptID   string `json:"DeptID"`
	SemID    string `json:"SemID"`
	AcYr     string `json:"AcYr"`
	CmProgID string `json:"CmProgID"`
}

type loginRequest struct {
	DType    string `json:"dtype"`
	Email    string `json:"Email"`
	Password string `json:"pwd"`
}

type loginResponse struct {
	Output struct {
		Data struct {
			Code            string        `json:"code"`
			ProgressionData []Progression `json:"progressionData"`
			LoginDetails    struct {
				Student []struct {
					StuID string `json:"StuID"`
				} `json:"Student"`
			} `json:"logindetails"`
		} `json:"data"`
	} `json:"output"`
}

type attendanceRequest struct {
	Progression
	StuID    string `json:"StuID"`
	IsFE     bool   `json:"isFE"`
	IsForWeb bool   `json:"isForWeb"`
	IsFrAbLg bool   `json:"isFrAbLg"`
}

type timetableRequest struct {
	Progression
	EnableV2      bool   `json:"enableV2"`
	Start         string `json:"start"`
	End           string `json:"end"`
	UserTime      string `json:"usrTime"`
	ScheduleType  string `json:"schdlTyp"`
	ShowCancelled bool   `json:"isShowCancelledPeriod"`
	FromTimetable bool   `json:"isFromTt"`
}

type menuRequest struct {
	StuID string `json:"stuId"`
	InID  string `json:"InId"`
	Day   string `json:"day"`
}

// AttendancePayload is the attendance endpoint response. Percentages are
// kept as json.Number so "85" and "85.5" render exactly as the ERP sent
// them.
type AttendancePayload struct {
	Output struct {
		Data *AttendanceData `json:"data"`
	} `json:"output"`
}

type AttendanceData struct {
	OverallPercent      json.Number         `json:"OvrAllPrcntg"`
	CurrentMonthPercent json.Number         `json:"CurMnthPrcntg"`
	OverallPresent      int                 `json:"OvrAllPCnt"`
	OverallTotal        int                 `json:"OvrAllCnt"`
	CurrentMonthPresent int                 `json:"CurMPCnt"`
	CurrentMonthTotal   int                 `json:"CurMCnt"`
	Subjects            []SubjectAttendance `json:"subjectList"`
}

type SubjectAttendance struct {
	Code         string      `json:"SubjCd"`
	Name         string      `json:"SubjNm"`
	Percent      json.Number `json:"OvrAllPrcntg"`
	Present      int         `json:"prsentCnt"`
	Absent       int         `json:"absentCnt"`
	Leave        int         `json:"leaveCnt"`
	OnDuty       int         `json:"onDutyCnt"`
	MedicalLeave int         `json:"medLeaveCnt"`
	Total        int         `json:"all"`
}

type TimetablePayload struct {
	Output struct {
		Data []TimetableDay `json:"data"`
	} `json:"output"`
}

type TimetableDay struct {
	Periods []Period `json:"Periods"`
}

// Period start/end are ISO-8601 strings already expressed in IST civil
// time; they must not be converted through another timezone.
type Period struct {
	Subject string `json:"SubNa"`
	Faculty string `json:"StaffNm"`
	Room    string `json:"Location"`
	Start   string `json:"start"`
	End     string `json:"end"`
}

type MenuPayload struct {
	Output struct {
		Data *MenuData `json:"data"`
	} `json:"output"`
}

type MenuData struct {
	Facility string `json:"facNme"`
	Meals    []Meal `json:"oMealList"`
}

// Meal items arrive as one newline-delimited string.
type Meal struct {
	Time  string `json:"mealTm"`
	Items string `json:"msNme"`
}
