package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elnet/electronics-network/internal/models"
)

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")
	userID := uuid.New()

	token, err := GenerateJWT(userID, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)

	subject, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, userID, subject)
}

func TestJWTRejectsExpiredAndForeignTokens(t *testing.T) {
	SetJWTSecret("test-secret")

	expired, err := GenerateJWT(uuid.New(), -time.Minute)
	require.NoError(t, err)
	_, err = ValidateJWT(expired)
	assert.Error(t, err)

	SetJWTSecret("other-secret")
	foreign, err := GenerateJWT(uuid.New(), time.Hour)
	require.NoError(t, err)

	SetJWTSecret("test-secret")
	_, err = ValidateJWT(foreign)
	assert.Error(t, err)
}

func TestPaginatorParams(t *testing.T) {
	gin.SetMode(gin.TestMode)
	p := NewPaginator(5, 50)

	tests := []struct {
		query    string
		page     int
		pageSize int
	}{
		{"", 1, 5},
		{"?page=3&page_size=10", 3, 10},
		{"?page=0&page_size=500", 1, 50},
		{"?page=abc&page_size=-1", 1, 5},
	}

	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/v1/manufacturers"+tt.query, nil)

		params := p.Params(c)
		assert.Equal(t, tt.page, params.Page, tt.query)
		assert.Equal(t, tt.pageSize, params.PageSize, tt.query)
	}
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]int{1, 2}, 11, PaginationParams{Page: 2, PageSize: 5})
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, int64(11), result.Total)
}

func TestValidateStruct(t *testing.T) {
	type request struct {
		Username string `validate:"required,username"`
		Password string `validate:"required,strong_password"`
		Kind     string `validate:"required,party_kind"`
	}

	assert.NoError(t, ValidateStruct(request{Username: "dealer.one", Password: "Secret123", Kind: "retail_network"}))

	err := ValidateStruct(request{Username: "bad name", Password: "short", Kind: "wholesaler"})
	require.Error(t, err)

	fields := map[string]string{}
	for _, e := range GetValidationErrors(err) {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "username", fields["username"])
	assert.Equal(t, "strong_password", fields["password"])
	assert.Equal(t, "party_kind", fields["kind"])
}

func TestPartyRefKindUsesPartyKindRule(t *testing.T) {
	assert.NoError(t, ValidateStruct(models.PartyRef{Kind: models.PartyKindIndividualEntrepreneur, ID: uuid.New()}))

	err := ValidateStruct(models.PartyRef{Kind: "warehouse", ID: uuid.New()})
	require.Error(t, err)
	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "kind", errs[0].Field)
	assert.Equal(t, "party_kind", errs[0].Tag)
}
