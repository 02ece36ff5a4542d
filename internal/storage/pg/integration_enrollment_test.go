package pg

import (
	"testing"

	internal_errors "github.com/betauni/betauni/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamRegistrationFlow(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")
	student := seedStudent(t, "123456", "ada@uni.test")
	course := seedCourse(t, "ALG1")
	exam := seedExam(t, course.ID, "2026-02-10")

	reg, err := storage.RegisterStudentToExam(student.ID, exam.ID)
	require.NoError(t, err)
	assert.NotZero(t, reg.ID)
	assert.Equal(t, course.ID, reg.CourseID, "course must be resolved from the exam")
	assert.Equal(t, "INF1", reg.DepartmentID)

	t.Run("double registration conflicts", func(t *testing.T) {
		_, err := storage.RegisterStudentToExam(student.ID, exam.ID)
		assert.True(t, internal_errors.IsConflict(err))
	})

	t.Run("unknown exam is not found", func(t *testing.T) {
		_, err := storage.RegisterStudentToExam(student.ID, 99999)
		assert.True(t, internal_errors.IsNotFound(err))
	})

	t.Run("student exams resolve names", func(t *testing.T) {
		infos, err := storage.ExamsOfStudent(student.ID)
		require.NoError(t, err)
		require.Len(t, infos, 1)
		assert.Equal(t, exam.ID, infos[0].ID)
		assert.Equal(t, course.Name, infos[0].CourseName)
		assert.Equal(t, "Informatics", infos[0].DepartmentName)
	})

	t.Run("owned delete scoped to student", func(t *testing.T) {
		err := storage.DeleteExamRegistrationOwned(reg.ID, "999999")
		assert.True(t, internal_errors.IsNotFound(err), "foreign student must not see the row")

		require.NoError(t, storage.DeleteExamRegistrationOwned(reg.ID, student.ID))

		infos, err := storage.ExamsOfStudent(student.ID)
		require.NoError(t, err)
		assert.Empty(t, infos)
	})
}

func TestStudyPlanFlow(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")
	student := seedStudent(t, "123456", "ada@uni.test")
	course := seedCourse(t, "ALG1")
	lab := seedLaboratory(t, "Networks Lab")

	entry, err := storage.AddStudentCourse(student.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, "INF1", entry.DepartmentID)

	_, err = storage.AddStudentCourse(student.ID, course.ID)
	assert.True(t, internal_errors.IsConflict(err))

	courses, err := storage.CoursesOfStudent(student.ID)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	assert.Equal(t, course.ID, courses[0].ID)

	labEntry, err := storage.AddStudentLab(student.ID, lab.ID)
	require.NoError(t, err)

	labs, err := storage.LabsOfStudent(student.ID)
	require.NoError(t, err)
	require.Len(t, labs, 1)
	assert.Equal(t, lab.Name, labs[0].Name)

	require.NoError(t, storage.DeleteStudentCourseOwned(entry.ID, student.ID))
	require.NoError(t, storage.DeleteStudentLabOwned(labEntry.ID, student.ID))
}

func TestProfessorAssignmentsAndRosters(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")
	professor := seedProfessor(t, "ABCDEF", "alan@uni.test")
	student := seedStudent(t, "123456", "ada@uni.test")
	course := seedCourse(t, "ALG1")
	otherCourse := seedCourse(t, "NET1")
	pastExam := seedExam(t, course.ID, "2020-02-10")
	futureExam := seedExam(t, course.ID, "2099-06-15")
	lab := seedLaboratory(t, "Networks Lab")

	t.Run("lab assignment", func(t *testing.T) {
		entry, err := storage.AddProfessorLab(professor.ID, lab.ID)
		require.NoError(t, err)
		assert.Equal(t, "INF1", entry.DepartmentID)

		_, err = storage.AddProfessorLab(professor.ID, lab.ID)
		assert.True(t, internal_errors.IsConflict(err))

		labs, err := storage.LabsOfProfessor(professor.ID)
		require.NoError(t, err)
		assert.Len(t, labs, 1)
	})

	t.Run("course exam assignment", func(t *testing.T) {
		entry, err := storage.AssignProfCourseExam(professor.ID, course.ID, futureExam.ID)
		require.NoError(t, err)
		assert.Equal(t, course.ID, entry.CourseID)

		_, err = storage.AssignProfCourseExam(professor.ID, otherCourse.ID, futureExam.ID)
		require.Error(t, err, "exam belongs to a different course")

		_, err = storage.AssignProfCourseExam(professor.ID, course.ID, futureExam.ID)
		assert.True(t, internal_errors.IsConflict(err))
	})

	t.Run("future exams skip past dates", func(t *testing.T) {
		_, err := storage.AssignProfCourseExam(professor.ID, course.ID, pastExam.ID)
		require.NoError(t, err)

		exams, err := storage.FutureExamsOfProfessor(professor.ID)
		require.NoError(t, err)
		require.Len(t, exams, 1)
		assert.Equal(t, futureExam.ID, exams[0].ID)
	})

	t.Run("rosters", func(t *testing.T) {
		_, err := storage.AddStudentCourse(student.ID, course.ID)
		require.NoError(t, err)
		_, err = storage.RegisterStudentToExam(student.ID, futureExam.ID)
		require.NoError(t, err)
		_, err = storage.AddStudentLab(student.ID, lab.ID)
		require.NoError(t, err)

		byCourse, err := storage.StudentsByCourse(course.ID)
		require.NoError(t, err)
		require.Len(t, byCourse, 1)
		assert.Equal(t, student.ID, byCourse[0].StudentID)
		assert.Equal(t, student.Email, byCourse[0].Email)

		byExam, err := storage.StudentsByExam(futureExam.ID)
		require.NoError(t, err)
		assert.Len(t, byExam, 1)

		byLab, err := storage.StudentsByLab(lab.ID)
		require.NoError(t, err)
		assert.Len(t, byLab, 1)

		empty, err := storage.StudentsByCourse(otherCourse.ID)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestCatalogQueries(t *testing.T) {
	cleanTables(t)
	seedDepartment(t, "INF1", "Informatics")
	seedDepartment(t, "MAT1", "Mathematics")
	course := seedCourse(t, "ALG1")
	exam := seedExam(t, course.ID, "2026-02-10")

	departments, err := storage.Departments()
	require.NoError(t, err)
	assert.Len(t, departments, 2)

	infos, err := storage.ExamInfos()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, exam.ID, infos[0].ID)
	assert.Equal(t, course.Name, infos[0].CourseName)

	withExams, err := storage.CoursesWithExams("INF1")
	require.NoError(t, err)
	require.Len(t, withExams, 1)
	assert.Len(t, withExams[0].Exams, 1)

	empty, err := storage.CoursesWithExams("MAT1")
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, storage.DeleteCourse(course.ID))
	assert.True(t, internal_errors.IsNotFound(storage.DeleteCourse(course.ID)))
}
