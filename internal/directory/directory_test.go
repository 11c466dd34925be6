package directory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bankpro-dev/bankpro/internal/model"
)

func testDoc() *model.Document {
	return &model.Document{
		Accounts: []*model.Account{
			{AccountNo: "ABCD123456", Name: "Asha Verma"},
			{AccountNo: "WXYZ987654", Name: "Ravi Kumar"},
			{AccountNo: "QQRS555555", Name: "asha patel"},
		},
	}
}

func TestFind(t *testing.T) {
	doc := testDoc()

	a := Find(doc, "WXYZ987654")
	require.NotNil(t, a)
	assert.Equal(t, "Ravi Kumar", a.Name)

	assert.Nil(t, Find(doc, "NOPE000000"))
	assert.Nil(t, Find(doc, ""))
}

func TestExists(t *testing.T) {
	doc := testDoc()
	assert.True(t, Exists(doc, "ABCD123456"))
	assert.False(t, Exists(doc, "ABCD123457"))
}

func TestSearch(t *testing.T) {
	doc := testDoc()

	tests := []struct {
		query string
		want  int
	}{
		{"asha", 2}, // matches both names, case-insensitive
		{"ASHA", 2},
		{"ravi", 1},
		{"wxyz", 1}, // account-number substring
		{"555", 1},
		{"nomatch", 0},
	}
	for _, tt := range tests {
		got := Search(doc, tt.query)
		assert.Len(t, got, tt.want, "query %q", tt.query)
	}
}

func TestSearch_BlankQueryMatchesNothing(t *testing.T) {
	doc := testDoc()
	assert.Empty(t, Search(doc, ""))
	assert.Empty(t, Search(doc, "   "))
	assert.Empty(t, Search(doc, "\t\n"))
}
