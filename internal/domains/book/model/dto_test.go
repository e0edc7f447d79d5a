package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStoreSummary_BuildMessage(t *testing.T) {
	tests := []struct {
		name       string
		duplicates int
		want       string
	}{
		{"zero duplicates", 0, ""},
		{"single duplicate", 1, "1 book of requested author already exist in the database"},
		{"multiple duplicates", 2, "2 books of requested author already exist in the database"},
		{"many duplicates", 50, "50 books of requested author already exist in the database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &StoreSummary{DuplicatesCount: tt.duplicates}
			s.BuildMessage()
			assert.Equal(t, tt.want, s.Message)
		})
	}
}

func TestStoreBooksRequest_Validate(t *testing.T) {
	assert.Error(t, StoreBooksRequest{}.Validate())
	assert.Error(t, StoreBooksRequest{Author: ""}.Validate())
	assert.NoError(t, StoreBooksRequest{Author: "J.R.R. Tolkien"}.Validate())
}

func TestBook_ToResponse_NilSlices(t *testing.T) {
	b := Book{Title: "The Hobbit"}
	resp := b.ToResponse()

	assert.Equal(t, "The Hobbit", resp.Title)
	assert.NotNil(t, resp.Authors)
	assert.Empty(t, resp.Authors)
	assert.NotNil(t, resp.Language)
	assert.Empty(t, resp.Language)
	assert.Nil(t, resp.EbookAccess)
	assert.Nil(t, resp.FirstPublishYear)
}
