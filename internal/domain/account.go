package domain

// Student and Professor are the two account kinds. Their ids are generated at
// registration: students get 6 digits, professors 6 uppercase letters.

type Student struct {
	ID             string     `json:"studId"`
	Name           string     `json:"name"`
	Surname        string     `json:"surname"`
	BirthDate      Date       `json:"birthDate"`
	Email          string     `json:"email"`
	Credential     Credential `json:"-"`
	PhoneNumber    string     `json:"phoneNumber"`
	DepartmentID   string     `json:"departmentId"`
	EnrollmentDate Date       `json:"enrollmentDate"`
}

type Professor struct {
	ID             string     `json:"profId"`
	Name           string     `json:"name"`
	Surname        string     `json:"surname"`
	BirthDate      Date       `json:"birthDate"`
	Email          string     `json:"email"`
	Credential     Credential `json:"-"`
	PhoneNumber    string     `json:"phoneNumber"`
	DepartmentID   string     `json:"departmentId"`
	EnrollmentDate Date       `json:"enrollmentDate"`
}

// Registration is the data common to both signup flows. The service derives
// the credential, generates the id and stamps the enrollment date.
type Registration struct {
	Name         string
	Surname      string
	BirthDate    Date
	Email        string
	Password     string
	PhoneNumber  string
	DepartmentID string
}

// ProfileUpdate carries the fields an authenticated account may change about
// itself. Nil means "leave as is".
type ProfileUpdate struct {
	PhoneNumber *string
	Password    *string
}

// AccountInfo is the profile view returned to a logged-in account, with the
// department name resolved.
type AccountInfo struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Surname        string `json:"surname"`
	BirthDate      Date   `json:"birthDate"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	DepartmentID   string `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	EnrollmentDate Date   `json:"enrollmentDate"`
}
