package service

import (
	"net/http"
	"strings"

	"github.com/betauni/betauni/internal/credential"
	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
	"github.com/betauni/betauni/internal/logger"
)

// idRetries bounds how many generated id candidates a registration tries
// before giving up on collisions.
const idRetries = 5

var (
	errInvalidCredentials = &internal_errors.ErrorWithStatusCode{Message: "Invalid credentials", StatusCode: http.StatusUnauthorized}
	errEmailTaken         = &internal_errors.ErrorWithStatusCode{Message: "Email already registered", StatusCode: http.StatusConflict}
	errIDExhausted        = &internal_errors.ErrorWithStatusCode{Message: "Could not allocate an account id, retry", StatusCode: http.StatusServiceUnavailable}
)

type AuthService interface {
	RegisterStudent(reg domain.Registration) (domain.Student, error)
	RegisterProfessor(reg domain.Registration) (domain.Professor, error)
	LoginStudent(email, password string) (string, error)
	LoginProfessor(email, password string) (string, error)
	StudentInfo(id string) (domain.AccountInfo, error)
	ProfessorInfo(id string) (domain.AccountInfo, error)
	UpdateStudentProfile(id string, update domain.ProfileUpdate) error
	UpdateProfessorProfile(id string, update domain.ProfileUpdate) error
}

type Auth struct {
	storage AccountStorage
	ids     IDSource
	jwt     Jwt
}

type AccountStorage interface {
	SaveStudent(student domain.Student) error
	StudentByEmail(email string) (domain.Student, error)
	StudentInfo(id string) (domain.AccountInfo, error)
	UpdateStudent(id string, phone *string, cred *domain.Credential) error

	SaveProfessor(professor domain.Professor) error
	ProfessorByEmail(email string) (domain.Professor, error)
	ProfessorInfo(id string) (domain.AccountInfo, error)
	UpdateProfessor(id string, phone *string, cred *domain.Credential) error
}

type IDSource interface {
	NewStudentID() string
	NewProfessorID() string
}

type Jwt interface {
	NewToken(principalID string, role domain.Role, email string) (string, error)
}

func NewAuth(storage AccountStorage, ids IDSource, jwt Jwt) *Auth {
	return &Auth{storage: storage, ids: ids, jwt: jwt}
}

// RegisterStudent creates a student account: the password is derived into a
// stored credential, the id is generated and retried on collision.
func (a *Auth) RegisterStudent(reg domain.Registration) (domain.Student, error) {
	cred, email, err := a.prepare(&reg)
	if err != nil {
		return domain.Student{}, err
	}

	if _, err := a.storage.StudentByEmail(email); err == nil {
		return domain.Student{}, errEmailTaken
	} else if !internal_errors.IsNotFound(err) {
		return domain.Student{}, err
	}

	student := domain.Student{
		Name:           reg.Name,
		Surname:        reg.Surname,
		BirthDate:      reg.BirthDate,
		Email:          email,
		Credential:     cred,
		PhoneNumber:    reg.PhoneNumber,
		DepartmentID:   reg.DepartmentID,
		EnrollmentDate: domain.Today(),
	}

	for attempt := 0; attempt < idRetries; attempt++ {
		student.ID = a.ids.NewStudentID()
		err = a.storage.SaveStudent(student)
		if err == nil {
			return student, nil
		}
		if !internal_errors.IsConflict(err) {
			return domain.Student{}, err
		}
		logger.Log.Debug("student id collision, retrying", "attempt", attempt+1)
	}
	return domain.Student{}, errIDExhausted
}

func (a *Auth) RegisterProfessor(reg domain.Registration) (domain.Professor, error) {
	cred, email, err := a.prepare(&reg)
	if err != nil {
		return domain.Professor{}, err
	}

	if _, err := a.storage.ProfessorByEmail(email); err == nil {
		return domain.Professor{}, errEmailTaken
	} else if !internal_errors.IsNotFound(err) {
		return domain.Professor{}, err
	}

	professor := domain.Professor{
		Name:           reg.Name,
		Surname:        reg.Surname,
		BirthDate:      reg.BirthDate,
		Email:          email,
		Credential:     cred,
		PhoneNumber:    reg.PhoneNumber,
		DepartmentID:   reg.DepartmentID,
		EnrollmentDate: domain.Today(),
	}

	for attempt := 0; attempt < idRetries; attempt++ {
		professor.ID = a.ids.NewProfessorID()
		err = a.storage.SaveProfessor(professor)
		if err == nil {
			return professor, nil
		}
		if !internal_errors.IsConflict(err) {
			return domain.Professor{}, err
		}
		logger.Log.Debug("professor id collision, retrying", "attempt", attempt+1)
	}
	return domain.Professor{}, errIDExhausted
}

// prepare normalizes the registration in place and derives the credential.
func (a *Auth) prepare(reg *domain.Registration) (domain.Credential, string, error) {
	reg.Name = sanitizeText(reg.Name)
	reg.Surname = sanitizeText(reg.Surname)
	reg.PhoneNumber = sanitizeText(reg.PhoneNumber)

	cred, err := credential.Derive(reg.Password)
	if err != nil {
		return domain.Credential{}, "", &internal_errors.ErrorWithStatusCode{Message: "Password must not be empty", StatusCode: http.StatusBadRequest}
	}
	return cred, strings.ToLower(strings.TrimSpace(reg.Email)), nil
}

// LoginStudent checks the password and mints a student token. Unknown email
// and wrong password are indistinguishable to the caller.
func (a *Auth) LoginStudent(email, password string) (string, error) {
	student, err := a.storage.StudentByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	return a.login(student.ID, domain.RoleStudent, student.Email, password, student.Credential)
}

func (a *Auth) LoginProfessor(email, password string) (string, error) {
	professor, err := a.storage.ProfessorByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", errInvalidCredentials
		}
		return "", err
	}
	return a.login(professor.ID, domain.RoleProfessor, professor.Email, password, professor.Credential)
}

func (a *Auth) login(id string, role domain.Role, email, password string, cred domain.Credential) (string, error) {
	ok, err := credential.Verify(password, cred.Hash, cred.Salt)
	if err != nil {
		logger.Log.Error("stored credential unreadable", "id", id, "error", err)
		return "", errInvalidCredentials
	}
	if !ok {
		return "", errInvalidCredentials
	}
	return a.jwt.NewToken(id, role, email)
}

func (a *Auth) StudentInfo(id string) (domain.AccountInfo, error) {
	return a.storage.StudentInfo(id)
}

func (a *Auth) ProfessorInfo(id string) (domain.AccountInfo, error) {
	return a.storage.ProfessorInfo(id)
}

// UpdateStudentProfile changes the phone number and/or password of an
// account. A new password is derived with a fresh salt.
func (a *Auth) UpdateStudentProfile(id string, update domain.ProfileUpdate) error {
	phone, cred, err := prepareUpdate(update)
	if err != nil {
		return err
	}
	return a.storage.UpdateStudent(id, phone, cred)
}

func (a *Auth) UpdateProfessorProfile(id string, update domain.ProfileUpdate) error {
	phone, cred, err := prepareUpdate(update)
	if err != nil {
		return err
	}
	return a.storage.UpdateProfessor(id, phone, cred)
}

func prepareUpdate(update domain.ProfileUpdate) (*string, *domain.Credential, error) {
	var phone *string
	if update.PhoneNumber != nil {
		clean := sanitizeText(*update.PhoneNumber)
		phone = &clean
	}

	var cred *domain.Credential
	if update.Password != nil {
		derived, err := credential.Derive(*update.Password)
		if err != nil {
			return nil, nil, &internal_errors.ErrorWithStatusCode{Message: "Password must not be empty", StatusCode: http.StatusBadRequest}
		}
		cred = &derived
	}

	if phone == nil && cred == nil {
		return nil, nil, &internal_errors.ErrorWithStatusCode{Message: "Nothing to update", StatusCode: http.StatusBadRequest}
	}
	return phone, cred, nil
}
