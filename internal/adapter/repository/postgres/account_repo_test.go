package postgres

import (
	"testing"

	"github.com/iho/boki/internal/domain"
)

func TestSortAccountsByClassificationThenID(t *testing.T) {
	accounts := []*domain.Account{
		{ID: 7, Name: "仕入高", Type: domain.Expense},
		{ID: 4, Name: "資本金", Type: domain.Equity},
		{ID: 6, Name: "売上高", Type: domain.Income},
		{ID: 2, Name: "売掛金", Type: domain.Asset},
		{ID: 1, Name: "普通預金", Type: domain.Asset},
		{ID: 3, Name: "買掛金", Type: domain.Liability},
	}

	sortAccounts(accounts)

	wantOrder := []int32{1, 2, 3, 4, 6, 7}
	for i, want := range wantOrder {
		if accounts[i].ID != want {
			t.Fatalf("position %d: got account %d, want %d", i, accounts[i].ID, want)
		}
	}

	// assets first, expenses last
	if accounts[0].Type != domain.Asset || accounts[len(accounts)-1].Type != domain.Expense {
		t.Fatalf("classification order broken: %+v", accounts)
	}
}
