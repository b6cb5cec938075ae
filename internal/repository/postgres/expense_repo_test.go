package postgres_test

import (
	"context"
	"testing"

	"github.com/Debanga-06/Expense-Tracker/internal/repository/postgres"
	"github.com/Debanga-06/Expense-Tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRepository_GetByOwner(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewExpenseBuilder().WithOwner(owner).WithDate("2024-01-10").Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithDate("2024-06-20").Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(other).WithDate("2024-03-15").Build(t, testDB.DB)

	expenses, err := repo.GetByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 2)

	// Newest first, only the owner's rows
	assert.Equal(t, "2024-06-20", expenses[0].DateString())
	assert.Equal(t, "2024-01-10", expenses[1].DateString())
	for _, e := range expenses {
		assert.Equal(t, owner.ID, e.OwnerID)
	}
}

func TestExpenseRepository_GetByOwner_Empty(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	expenses, err := repo.GetByOwner(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestExpenseRepository_DeleteByOwnerAndID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	expense := testutil.NewExpenseBuilder().WithOwner(owner).Build(t, testDB.DB)

	tests := []struct {
		name        string
		ownerID     uuid.UUID
		expenseID   uuid.UUID
		wantDeleted bool
	}{
		{
			name:        "wrong owner does not delete",
			ownerID:     other.ID,
			expenseID:   expense.ID,
			wantDeleted: false,
		},
		{
			name:        "unknown id does not delete",
			ownerID:     owner.ID,
			expenseID:   uuid.New(),
			wantDeleted: false,
		},
		{
			name:        "owner deletes own expense",
			ownerID:     owner.ID,
			expenseID:   expense.ID,
			wantDeleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deleted, err := repo.DeleteByOwnerAndID(ctx, tt.ownerID, tt.expenseID)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestExpenseRepository_SumByCategory(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewExpenseBuilder().WithOwner(owner).WithCategory("Food").WithAmount(50).Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithCategory("Food").WithAmount(30).Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithCategory("Rent").WithAmount(700).Build(t, testDB.DB)

	totals, err := repo.SumByCategory(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	byCategory := make(map[string]float64, len(totals))
	for _, row := range totals {
		byCategory[row.Category] = row.Total
	}
	assert.InDelta(t, 80, byCategory["Food"], 0.001)
	assert.InDelta(t, 700, byCategory["Rent"], 0.001)
}

func TestExpenseRepository_SumByMonth(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(50).WithDate("2024-03-01").Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(25).WithDate("2024-03-20").Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(30).WithDate("2024-11-05").Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(99).WithDate("2023-03-01").Build(t, testDB.DB)

	totals, err := repo.SumByMonth(ctx, owner.ID, 2024)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, 3, totals[0].Month)
	assert.InDelta(t, 75, totals[0].Total, 0.001)
	assert.Equal(t, 11, totals[1].Month)
	assert.InDelta(t, 30, totals[1].Total, 0.001)
}

func TestExpenseRepository_SumAll(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewExpenseRepository(testDB.DB)
	ctx := context.Background()

	owner, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	total, err := repo.SumAll(ctx, owner.ID)
	require.NoError(t, err)
	assert.Zero(t, total)

	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(12.5).Build(t, testDB.DB)
	testutil.NewExpenseBuilder().WithOwner(owner).WithAmount(7.5).Build(t, testDB.DB)

	total, err = repo.SumAll(ctx, owner.ID)
	require.NoError(t, err)
	assert.InDelta(t, 20, total, 0.001)
}
