package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tipapi/bootstrap"
	"tipapi/models"
	"tipapi/pkg/testdb"
)

func newCriteriaRepo(t *testing.T) ReviewGroupCriteriaRepository {
	t.Helper()
	return NewReviewGroupCriteriaRepositoryWithDB(testdb.Open(t, bootstrap.Migrate))
}

func saveCriteria(t *testing.T, repo ReviewGroupCriteriaRepository, name string, ct models.GroupCriteriaType) *models.ReviewGroupCriteria {
	t.Helper()
	c := &models.ReviewGroupCriteria{CriteriaName: name, CriteriaType: ct}
	require.NoError(t, repo.Save(nil, c))
	return c
}

func TestCriteriaSaveAndFind(t *testing.T) {
	repo := newCriteriaRepo(t)
	c := saveCriteria(t, repo, "Budget variance", models.CriteriaFinancial)

	got, err := repo.FindByID(nil, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Budget variance", got.CriteriaName)
	assert.Equal(t, models.CriteriaFinancial, got.CriteriaType)

	got.CriteriaType = models.CriteriaRiskBased
	require.NoError(t, repo.Save(nil, got))

	again, err := repo.FindByID(nil, c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CriteriaRiskBased, again.CriteriaType)
	assert.True(t, again.CreatedAt.Equal(got.CreatedAt))
}

func TestCriteriaDuplicateName(t *testing.T) {
	repo := newCriteriaRepo(t)
	saveCriteria(t, repo, "Unique", models.CriteriaQuality)

	err := repo.Save(nil, &models.ReviewGroupCriteria{CriteriaName: "Unique", CriteriaType: models.CriteriaQuality})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestCriteriaTypeQueries(t *testing.T) {
	repo := newCriteriaRepo(t)
	saveCriteria(t, repo, "A", models.CriteriaFinancial)
	saveCriteria(t, repo, "B", models.CriteriaFinancial)
	saveCriteria(t, repo, "C", models.CriteriaSecurity)
	saveCriteria(t, repo, "D", models.CriteriaQuality)

	fin, err := repo.FindByCriteriaType(nil, models.CriteriaFinancial)
	require.NoError(t, err)
	assert.Len(t, fin, 2)

	n, err := repo.CountByCriteriaType(nil, models.CriteriaFinancial)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	set, err := repo.FindByCriteriaTypes(nil, []models.GroupCriteriaType{models.CriteriaSecurity, models.CriteriaQuality})
	require.NoError(t, err)
	assert.Len(t, set, 2)

	none, err := repo.FindByCriteriaTypes(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestCriteriaSearchByName(t *testing.T) {
	repo := newCriteriaRepo(t)
	saveCriteria(t, repo, "Code_Quality", models.CriteriaQuality)
	saveCriteria(t, repo, "CodeXQuality", models.CriteriaQuality)
	saveCriteria(t, repo, "Uptime", models.CriteriaPerformance)

	got, err := repo.FindByNameContaining(nil, "code_")
	require.NoError(t, err)
	require.Len(t, got, 1, "underscore must match literally")
	assert.Equal(t, "Code_Quality", got[0].CriteriaName)

	page, total, err := repo.SearchByName(nil, "QUALITY", PageQuery{Page: 0, Size: 10, SortColumn: "criteria_name", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, page, 2)
	assert.Equal(t, "Code_Quality", page[0].CriteriaName)
}

func TestCriteriaDeleteAndDeactivate(t *testing.T) {
	repo := newCriteriaRepo(t)
	a := saveCriteria(t, repo, "A", models.CriteriaTechnical)
	b := saveCriteria(t, repo, "B", models.CriteriaTechnical)

	require.NoError(t, repo.DeleteByID(nil, a.ID))
	exists, err := repo.ExistsByID(nil, a.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, repo.Deactivate(nil, b.ID, "ops"))
	got, err := repo.FindByID(nil, b.ID)
	require.NoError(t, err)
	assert.False(t, got.Active())

	exists, err = repo.ExistsByNameExcludingID(nil, "B", b.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
