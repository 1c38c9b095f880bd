package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"tipapi/bootstrap"
	"tipapi/models"
	"tipapi/pkg/testdb"
)

type ReviewCycleGroupRepositorySuite struct {
	suite.Suite
	db   *gorm.DB
	repo ReviewCycleGroupRepository
}

func TestReviewCycleGroupRepositorySuite(t *testing.T) {
	suite.Run(t, new(ReviewCycleGroupRepositorySuite))
}

func (s *ReviewCycleGroupRepositorySuite) SetupTest() {
	s.db = testdb.Open(s.T(), bootstrap.Migrate)
	s.repo = NewReviewCycleGroupRepositoryWithDB(s.db)
}

func i64(v int64) *int64 { return &v }
func boolp(v bool) *bool  { return &v }
func uintp(v uint) *uint  { return &v }

func (s *ReviewCycleGroupRepositorySuite) insert(name string, cycleID uint, start, end *int64, idis ...string) *models.ReviewCycleGroup {
	g := &models.ReviewCycleGroup{
		ReviewGroupName: name,
		ReviewCycleID:   cycleID,
		ReviewTypeID:    1,
		RangeStart:      start,
		RangeEnd:        end,
		AuditFields:     models.AuditFields{CreatedBy: "alice", UpdatedBy: "alice"},
	}
	g.SetIdiValues(idis)
	s.Require().NoError(s.repo.Save(nil, g))
	s.Require().NotZero(g.ID)
	return g
}

func (s *ReviewCycleGroupRepositorySuite) TestSaveInsertsWithIdisInOrder() {
	g := s.insert("Financial Review", 1, i64(100), i64(500), "IDI002", "IDI001")

	got, err := s.repo.FindByID(nil, g.ID)
	s.Require().NoError(err)
	s.Equal("Financial Review", got.ReviewGroupName)
	s.Equal([]string{"IDI002", "IDI001"}, got.IdiValues())
	s.Equal("alice", got.CreatedBy)
	s.True(got.Active())
	s.False(got.CreatedAt.IsZero())
}

func (s *ReviewCycleGroupRepositorySuite) TestSaveUpdateReplacesIdisAndKeepsCreatedFields() {
	g := s.insert("Ops", 1, nil, nil, "A", "B")

	loaded, err := s.repo.FindByID(nil, g.ID)
	s.Require().NoError(err)
	createdAt := loaded.CreatedAt
	loaded.ReviewGroupName = "Ops Renamed"
	loaded.CreatedBy = "mallory"
	loaded.UpdatedBy = "bob"
	loaded.SetIdiValues([]string{"C"})
	s.Require().NoError(s.repo.Save(nil, loaded))

	got, err := s.repo.FindByID(nil, g.ID)
	s.Require().NoError(err)
	s.Equal("Ops Renamed", got.ReviewGroupName)
	s.Equal("alice", got.CreatedBy)
	s.Equal("bob", got.UpdatedBy)
	s.Equal([]string{"C"}, got.IdiValues())
	s.True(got.CreatedAt.Equal(createdAt), "created timestamp must not change")

	var idiRows int64
	s.Require().NoError(s.db.Model(&models.ReviewCycleGroupIdi{}).Count(&idiRows).Error)
	s.Equal(int64(1), idiRows)
}

func (s *ReviewCycleGroupRepositorySuite) TestFindByIDMissing() {
	_, err := s.repo.FindByID(nil, 999)
	s.True(errors.Is(err, gorm.ErrRecordNotFound))
}

func (s *ReviewCycleGroupRepositorySuite) TestUniqueNameIndexTranslatesToDuplicatedKey() {
	s.insert("Dup", 1, nil, nil)
	err := s.repo.Save(nil, &models.ReviewCycleGroup{ReviewGroupName: "Dup", ReviewCycleID: 1, ReviewTypeID: 1})
	s.True(errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func (s *ReviewCycleGroupRepositorySuite) TestExistsByNameExcludingID() {
	a := s.insert("Alpha", 1, nil, nil)
	b := s.insert("Beta", 1, nil, nil)

	exists, err := s.repo.ExistsByName(nil, "Alpha")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByNameExcludingID(nil, "Alpha", a.ID)
	s.Require().NoError(err)
	s.False(exists)

	exists, err = s.repo.ExistsByNameExcludingID(nil, "Alpha", b.ID)
	s.Require().NoError(err)
	s.True(exists)
}

func (s *ReviewCycleGroupRepositorySuite) TestFindByValueInRangeIsInclusiveAndSkipsNullBounds() {
	in := s.insert("In", 1, i64(100), i64(500))
	s.insert("OpenEnded", 1, i64(100), nil)
	s.insert("NoRange", 1, nil, nil)
	s.insert("Inverted", 1, i64(500), i64(100))

	for _, v := range []int64{100, 300, 500} {
		got, err := s.repo.FindByValueInRange(nil, v)
		s.Require().NoError(err)
		s.Require().Len(got, 1, "value %d", v)
		s.Equal(in.ID, got[0].ID)
	}

	got, err := s.repo.FindByValueInRange(nil, 600)
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ReviewCycleGroupRepositorySuite) TestFindByIdi() {
	a := s.insert("A", 1, nil, nil, "IDI001", "IDI002")
	b := s.insert("B", 1, nil, nil, "IDI002")
	s.insert("C", 1, nil, nil)

	got, err := s.repo.FindByIdi(nil, "IDI002")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(a.ID, got[0].ID)
	s.Equal(b.ID, got[1].ID)
	s.Equal([]string{"IDI001", "IDI002"}, got[0].IdiValues())

	got, err = s.repo.FindByIdi(nil, "IDI0")
	s.Require().NoError(err)
	s.Empty(got)
}

func (s *ReviewCycleGroupRepositorySuite) TestPredicateFinders() {
	g := &models.ReviewCycleGroup{
		ReviewGroupName:   "Flagged",
		ReviewCycleID:     7,
		ReviewTypeID:      3,
		ReviewConditionID: uintp(11),
		BooleanState:      boolp(true),
	}
	s.Require().NoError(s.repo.Save(nil, g))
	s.insert("Other", 7, nil, nil)

	byCycle, err := s.repo.FindByReviewCycleID(nil, 7)
	s.Require().NoError(err)
	s.Len(byCycle, 2)

	n, err := s.repo.CountByReviewCycleID(nil, 7)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	byType, err := s.repo.FindByReviewTypeID(nil, 3)
	s.Require().NoError(err)
	s.Len(byType, 1)

	byCond, err := s.repo.FindByReviewConditionID(nil, 11)
	s.Require().NoError(err)
	s.Len(byCond, 1)

	byTrue, err := s.repo.FindByBooleanState(nil, true)
	s.Require().NoError(err)
	s.Require().Len(byTrue, 1)
	s.Equal(g.ID, byTrue[0].ID)

	byFalse, err := s.repo.FindByBooleanState(nil, false)
	s.Require().NoError(err)
	s.Empty(byFalse, "null state is neither true nor false")
}

func (s *ReviewCycleGroupRepositorySuite) TestSearchByNameIsCaseInsensitiveAndEscapesWildcards() {
	s.insert("Financial Review", 1, nil, nil)
	s.insert("Annual FINANCIAL audit", 1, nil, nil)
	s.insert("100% coverage", 1, nil, nil)
	s.insert("Security", 1, nil, nil)

	got, total, err := s.repo.SearchByName(nil, "financial", PageQuery{Page: 0, Size: 1})
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Len(got, 1)

	all, err := s.repo.FindByNameContaining(nil, "FINANCIAL")
	s.Require().NoError(err)
	s.Len(all, 2)

	pct, err := s.repo.FindByNameContaining(nil, "%")
	s.Require().NoError(err)
	s.Require().Len(pct, 1)
	s.Equal("100% coverage", pct[0].ReviewGroupName)
}

func (s *ReviewCycleGroupRepositorySuite) TestSearchByNameMatchesNonASCIITerm() {
	s.insert("Ärger Review", 1, nil, nil)
	s.insert("Other", 1, nil, nil)

	got, total, err := s.repo.SearchByName(nil, "Ärger", PageQuery{Page: 0, Size: 10})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(got, 1)
	s.Equal("Ärger Review", got[0].ReviewGroupName)

	mixed, err := s.repo.FindByNameContaining(nil, "Ärger REVIEW")
	s.Require().NoError(err)
	s.Len(mixed, 1)
}

func (s *ReviewCycleGroupRepositorySuite) TestFindAllPagedSortsAndCounts() {
	s.insert("Charlie", 1, nil, nil)
	s.insert("Alpha", 1, nil, nil)
	s.insert("Bravo", 1, nil, nil)

	page, total, err := s.repo.FindAllPaged(nil, PageQuery{Page: 0, Size: 2, SortColumn: "review_group_name"})
	s.Require().NoError(err)
	s.Equal(int64(3), total)
	s.Require().Len(page, 2)
	s.Equal("Alpha", page[0].ReviewGroupName)
	s.Equal("Bravo", page[1].ReviewGroupName)

	page, _, err = s.repo.FindAllPaged(nil, PageQuery{Page: 1, Size: 2, SortColumn: "review_group_name"})
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("Charlie", page[0].ReviewGroupName)

	page, _, err = s.repo.FindAllPaged(nil, PageQuery{Page: 0, Size: 10, Desc: true})
	s.Require().NoError(err)
	s.Require().Len(page, 3)
	s.Equal("Bravo", page[0].ReviewGroupName)
}

func (s *ReviewCycleGroupRepositorySuite) TestDeleteRemovesIdis() {
	g := s.insert("Gone", 1, nil, nil, "X")

	s.Require().NoError(s.repo.DeleteByID(nil, g.ID))

	exists, err := s.repo.ExistsByID(nil, g.ID)
	s.Require().NoError(err)
	s.False(exists)

	var idiRows int64
	s.Require().NoError(s.db.Model(&models.ReviewCycleGroupIdi{}).Count(&idiRows).Error)
	s.Zero(idiRows)

	// deleting a missing row is silent
	s.NoError(s.repo.DeleteByID(nil, g.ID))
}

func (s *ReviewCycleGroupRepositorySuite) TestDeactivate() {
	g := s.insert("Soft", 1, nil, nil)

	s.Require().NoError(s.repo.Deactivate(nil, g.ID, "carol"))

	got, err := s.repo.FindByID(nil, g.ID)
	s.Require().NoError(err)
	s.False(got.Active())
	s.Equal("carol", got.UpdatedBy)

	n, err := s.repo.Count(nil)
	s.Require().NoError(err)
	s.Equal(int64(1), n)
}

func (s *ReviewCycleGroupRepositorySuite) TestTransactionRollbackDiscardsIdis() {
	tx := s.db.Begin()
	g := &models.ReviewCycleGroup{ReviewGroupName: "Tx", ReviewCycleID: 1, ReviewTypeID: 1}
	g.SetIdiValues([]string{"T1"})
	s.Require().NoError(s.repo.Save(tx, g))
	s.Require().NoError(tx.Rollback().Error)

	n, err := s.repo.Count(nil)
	s.Require().NoError(err)
	s.Zero(n)
}
