package pg

import (
	"testing"

	"github.com/betauni/betauni/internal/domain"
	internal_errors "github.com/betauni/betauni/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentLifecycle(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")

	student := seedStudent(t, "123456", "ada@uni.test")

	t.Run("get by id", func(t *testing.T) {
		got, err := storage.Student("123456")
		require.NoError(t, err)
		assert.Equal(t, student, got)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := storage.StudentByEmail("ada@uni.test")
		require.NoError(t, err)
		assert.Equal(t, student.ID, got.ID)
		assert.Equal(t, student.Credential, got.Credential)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		_, err := storage.Student("999999")
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("duplicate id conflicts", func(t *testing.T) {
		dup := student
		dup.Email = "other@uni.test"
		err := storage.SaveStudent(dup)
		assert.True(t, internal_errors.IsConflict(err))
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		dup := student
		dup.ID = "654321"
		err := storage.SaveStudent(dup)
		assert.True(t, internal_errors.IsConflict(err))
	})

	t.Run("list", func(t *testing.T) {
		students, err := storage.Students()
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("info resolves department name", func(t *testing.T) {
		info, err := storage.StudentInfo("123456")
		require.NoError(t, err)
		assert.Equal(t, "Informatics", info.DepartmentName)
		assert.Equal(t, student.Email, info.Email)
	})

	t.Run("partial update", func(t *testing.T) {
		phone := "555000"
		require.NoError(t, storage.UpdateStudent("123456", &phone, nil))

		got, err := storage.Student("123456")
		require.NoError(t, err)
		assert.Equal(t, "555000", got.PhoneNumber)
		assert.Equal(t, student.Credential, got.Credential, "credential must be untouched")

		cred := domain.Credential{Hash: "bmV3aGFzaA==", Salt: "bmV3c2FsdA=="}
		require.NoError(t, storage.UpdateStudent("123456", nil, &cred))

		got, err = storage.Student("123456")
		require.NoError(t, err)
		assert.Equal(t, "555000", got.PhoneNumber, "phone must be untouched")
		assert.Equal(t, cred, got.Credential)
	})

	t.Run("update of unknown id is not found", func(t *testing.T) {
		phone := "1"
		err := storage.UpdateStudent("999999", &phone, nil)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestProfessorLifecycle(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")

	professor := seedProfessor(t, "ABCDEF", "alan@uni.test")

	got, err := storage.Professor("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, professor, got)

	byEmail, err := storage.ProfessorByEmail("alan@uni.test")
	require.NoError(t, err)
	assert.Equal(t, professor.ID, byEmail.ID)

	info, err := storage.ProfessorInfo("ABCDEF")
	require.NoError(t, err)
	assert.Equal(t, "Informatics", info.DepartmentName)

	dup := professor
	dup.Email = "other@uni.test"
	assert.True(t, internal_errors.IsConflict(storage.SaveProfessor(dup)))

	professors, err := storage.Professors()
	require.NoError(t, err)
	assert.Len(t, professors, 1)
}
