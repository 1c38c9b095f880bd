package services

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"tipapi/bootstrap"
	"tipapi/models"
	"tipapi/pkg/apperrors"
	"tipapi/pkg/metrics"
	"tipapi/pkg/testdb"
	"tipapi/repository"
	"tipapi/services/dto"
)

type ReviewGroupCriteriaServiceSuite struct {
	suite.Suite
	ctx context.Context
	svc ReviewGroupCriteriaService
}

func TestReviewGroupCriteriaServiceSuite(t *testing.T) {
	suite.Run(t, new(ReviewGroupCriteriaServiceSuite))
}

func (s *ReviewGroupCriteriaServiceSuite) SetupTest() {
	db := testdb.Open(s.T(), bootstrap.Migrate)
	s.ctx = context.Background()
	s.svc = NewReviewGroupCriteriaServiceWithDeps(
		repository.NewBaseRepositoryWithDB(db),
		repository.NewReviewGroupCriteriaRepositoryWithDB(db),
		metrics.New(prometheus.NewRegistry()),
		testPaging,
	)
}

func (s *ReviewGroupCriteriaServiceSuite) create(name, criteriaType string) *dto.ReviewGroupCriteriaDTO {
	out, err := s.svc.Create(s.ctx, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp(name), CriteriaType: strp(criteriaType)}, "alice")
	s.Require().NoError(err)
	return out
}

func (s *ReviewGroupCriteriaServiceSuite) TestCreateAndFind() {
	created := s.create("Budget variance", "financial")
	s.Equal("FINANCIAL", *created.CriteriaType)
	s.Equal("alice", created.CreatedBy)

	found, err := s.svc.FindByID(s.ctx, *created.ReviewGroupCriteriaID)
	s.Require().NoError(err)
	s.Equal("Budget variance", *found.CriteriaName)
}

func (s *ReviewGroupCriteriaServiceSuite) TestCreateDuplicateName() {
	s.create("Uptime", "PERFORMANCE")

	_, err := s.svc.Create(s.ctx, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp("Uptime"), CriteriaType: strp("QUALITY")}, "bob")
	s.Require().Error(err)
	s.True(errors.Is(err, apperrors.ErrConflict))
	appErr, _ := apperrors.As(err)
	s.Equal(apperrors.CodeCriteriaExists, appErr.Code)
	s.Equal("ReviewGroupCriteria with name already exists: Uptime", err.Error())
}

func (s *ReviewGroupCriteriaServiceSuite) TestCreateValidation() {
	_, err := s.svc.Create(s.ctx, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp("x"), CriteriaType: strp("ASTROLOGY")}, "")
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Create(s.ctx, &dto.ReviewGroupCriteriaDTO{CriteriaType: strp("QUALITY")}, "")
	s.True(errors.Is(err, apperrors.ErrValidation))

	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err = s.svc.Create(s.ctx, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp(string(long)), CriteriaType: strp("QUALITY")}, "")
	s.True(errors.Is(err, apperrors.ErrValidation))
}

func (s *ReviewGroupCriteriaServiceSuite) TestUpdatePartialAndRename() {
	a := s.create("A", "SECURITY")
	s.create("B", "SECURITY")
	id := *a.ReviewGroupCriteriaID

	updated, err := s.svc.Update(s.ctx, id, &dto.ReviewGroupCriteriaDTO{CriteriaType: strp("TECHNICAL")}, "bob")
	s.Require().NoError(err)
	s.Equal("A", *updated.CriteriaName)
	s.Equal("TECHNICAL", *updated.CriteriaType)
	s.Equal("alice", updated.CreatedBy)
	s.Equal("bob", updated.UpdatedBy)

	_, err = s.svc.Update(s.ctx, id, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp("B")}, "bob")
	s.True(errors.Is(err, apperrors.ErrConflict))

	_, err = s.svc.Update(s.ctx, id, &dto.ReviewGroupCriteriaDTO{CriteriaName: strp("A")}, "bob")
	s.NoError(err)

	_, err = s.svc.Update(s.ctx, id, &dto.ReviewGroupCriteriaDTO{CriteriaType: strp("bogus")}, "bob")
	s.True(errors.Is(err, apperrors.ErrValidation))

	_, err = s.svc.Update(s.ctx, 999, &dto.ReviewGroupCriteriaDTO{}, "bob")
	s.True(errors.Is(err, apperrors.ErrNotFound))
}

func (s *ReviewGroupCriteriaServiceSuite) TestDelete() {
	c := s.create("Short-lived", "QUALITY")
	id := *c.ReviewGroupCriteriaID

	s.Require().NoError(s.svc.Delete(s.ctx, id))
	_, err := s.svc.FindByID(s.ctx, id)
	s.True(errors.Is(err, apperrors.ErrNotFound))
	s.Equal("ReviewGroupCriteria not found with id: "+uitoa(id), err.Error())

	s.True(errors.Is(s.svc.Delete(s.ctx, id), apperrors.ErrNotFound))
}

func (s *ReviewGroupCriteriaServiceSuite) TestSoftDelete() {
	c := s.create("Paused", "COMPLIANCE")

	out, err := s.svc.SoftDelete(s.ctx, *c.ReviewGroupCriteriaID, "")
	s.Require().NoError(err)
	s.False(*out.IsActive)
	s.Equal(models.DefaultActor, out.UpdatedBy)
}

func (s *ReviewGroupCriteriaServiceSuite) TestTypeQueries() {
	s.create("F1", "FINANCIAL")
	s.create("F2", "FINANCIAL")
	s.create("S1", "SECURITY")
	s.create("Q1", "QUALITATIVE")

	fin, err := s.svc.FindByCriteriaType(s.ctx, models.CriteriaFinancial)
	s.Require().NoError(err)
	s.Len(fin, 2)

	n, err := s.svc.CountByCriteriaType(s.ctx, models.CriteriaFinancial)
	s.Require().NoError(err)
	s.Equal(int64(2), n)

	set, err := s.svc.FindByCriteriaTypes(s.ctx, []models.GroupCriteriaType{models.CriteriaSecurity, models.CriteriaQualitative})
	s.Require().NoError(err)
	s.Len(set, 2)

	s.Len(s.svc.CriteriaTypes(), 10)
}

func (s *ReviewGroupCriteriaServiceSuite) TestNameQueries() {
	s.create("Code coverage", "QUALITY")
	s.create("Code review latency", "PERFORMANCE")
	s.create("Encryption at rest", "SECURITY")

	page, err := s.svc.SearchByCriteriaName(s.ctx, "CODE", dto.PageRequest{Size: 1, SortBy: "criteriaName"})
	s.Require().NoError(err)
	s.Equal(int64(2), page.TotalElements)
	s.Equal(2, page.TotalPages)
	s.Require().Len(page.Content, 1)
	s.Equal("Code coverage", *page.Content[0].CriteriaName)

	unpaged, err := s.svc.FindByCriteriaNameContaining(s.ctx, "code")
	s.Require().NoError(err)
	s.Len(unpaged, 2)

	exists, err := s.svc.ExistsByCriteriaName(s.ctx, "Encryption at rest")
	s.Require().NoError(err)
	s.True(exists)

	exists, err = s.svc.ExistsByCriteriaName(s.ctx, "encryption at rest")
	s.Require().NoError(err)
	s.False(exists)

	all, err := s.svc.FindAllPaginated(s.ctx, dto.PageRequest{SortBy: "criteriaType", SortDirection: "desc"})
	s.Require().NoError(err)
	s.Require().Len(all.Content, 3)
	s.Equal("SECURITY", *all.Content[0].CriteriaType)

	count, err := s.svc.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), count)

	list, err := s.svc.FindAll(s.ctx)
	s.Require().NoError(err)
	s.Len(list, 3)
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}

func TestPageSettingsResolve(t *testing.T) {
	p := PageSettings{DefaultSize: 20, MaxSize: 100}

	q, err := p.resolve(dto.PageRequest{}, repository.ReviewGroupCriteriaSortColumns)
	require.NoError(t, err)
	assert.Equal(t, repository.PageQuery{Page: 0, Size: 20, SortColumn: "review_group_criteria_id"}, q)

	q, err = p.resolve(dto.PageRequest{Page: 3, Size: 101, SortBy: "criteriaName", SortDirection: "Desc"}, repository.ReviewGroupCriteriaSortColumns)
	require.NoError(t, err)
	assert.Equal(t, repository.PageQuery{Page: 3, Size: 100, SortColumn: "criteria_name", Desc: true}, q)

	q, err = p.resolve(dto.PageRequest{Size: -5}, repository.ReviewGroupCriteriaSortColumns)
	require.NoError(t, err)
	assert.Equal(t, 20, q.Size)
}

func TestActorOrDefault(t *testing.T) {
	assert.Equal(t, "system", actorOrDefault(""))
	assert.Equal(t, "system", actorOrDefault("   "))
	assert.Equal(t, "alice", actorOrDefault("alice"))
}
