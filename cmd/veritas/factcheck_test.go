package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactCheckSearchDisabledWithoutKey(t *testing.T) {
	fc := NewFactCheckClient("")

	resp, err := fc.Search(context.Background(), "anything")

	assert.Nil(t, resp)
	require.Error(t, err)
	assert.True(t, IsStageDisabled(err))
}

func TestFactCheckSearchDecodesClaims(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(factCheckHit))
	}))
	defer server.Close()

	fc := NewFactCheckClient("secret")
	fc.endpoint = server.URL

	resp, err := fc.Search(context.Background(), "Vaccines cause autism")

	require.NoError(t, err)
	assert.Equal(t, "Vaccines cause autism", gotQuery)
	assert.Equal(t, "secret", gotKey)
	require.Len(t, resp.Claims, 1)
	require.Len(t, resp.Claims[0].ClaimReview, 1)
	assert.Equal(t, "False", resp.Claims[0].ClaimReview[0].TextualRating)
	assert.Equal(t, "https://cdc.gov/x", resp.Claims[0].ClaimReview[0].URL)
}

func TestFactCheckSearchEmptyResponseIsNoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	fc := NewFactCheckClient("secret")
	fc.endpoint = server.URL

	resp, err := fc.Search(context.Background(), "nobody checked this")

	require.NoError(t, err)
	assert.Empty(t, resp.Claims)
}

func TestFactCheckSearchNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	fc := NewFactCheckClient("bad-key")
	fc.endpoint = server.URL

	_, err := fc.Search(context.Background(), "claim")

	require.Error(t, err)
	assert.False(t, IsStageDisabled(err))
}

func TestResultFromReviewFieldSelection(t *testing.T) {
	review := ClaimReview{
		URL:           "https://checker.example/r",
		Title:         "Claim debunked",
		TextualRating: "False",
	}

	result := resultFromReview("c", "Health", review, 0.95)

	assert.Equal(t, "False", result.Status)
	assert.Equal(t, "Claim debunked", result.Explanation)
	assert.Equal(t, []string{"https://checker.example/r"}, result.Sources)
	assert.Equal(t, 0.95, result.Confidence)
	assert.Equal(t, methodFactCheck, result.Method)
}

func TestResultFromReviewMissingFields(t *testing.T) {
	// Rating absent: the title stands in for status, then for explanation
	result := resultFromReview("c", "General", ClaimReview{Title: "Partially true"}, 0.95)
	assert.Equal(t, "Partially true", result.Status)
	assert.Equal(t, "Partially true", result.Explanation)
	assert.Empty(t, result.Sources)

	// Title and rating absent: the review's explanation text still surfaces
	result = resultFromReview("c", "General", ClaimReview{
		Explanation: "Detailed analysis shows the claim is unfounded",
	}, 0.95)
	assert.Equal(t, statusUnverified, result.Status)
	assert.Equal(t, "Detailed analysis shows the claim is unfounded", result.Explanation)

	// Entirely empty review still produces a complete result
	result = resultFromReview("c", "General", ClaimReview{}, 0.95)
	assert.Equal(t, statusUnverified, result.Status)
	assert.Empty(t, result.Explanation)
	assert.Empty(t, result.Sources)
}
