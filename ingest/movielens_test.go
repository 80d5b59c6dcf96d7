package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/rushteam/simkit/core"
)

func TestParseRatings(t *testing.T) {
	input := "196\t242\t3\t881250949\n186\t302\t3\t891717742\n22\t377\t1\t878887116\n"

	ratings, err := ParseRatings(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseRatings() error = %v", err)
	}
	if len(ratings) != 3 {
		t.Fatalf("got %d ratings, want 3", len(ratings))
	}
	want := core.Rating{UserID: 196, ItemID: 242, Value: 3}
	if ratings[0] != want {
		t.Errorf("ratings[0] = %+v, want %+v", ratings[0], want)
	}
}

func TestParseRatingsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "non-numeric rating", input: "1\t2\tabc\t100\n"},
		{name: "too few fields", input: "1\t2\n"},
		{name: "non-numeric user", input: "x\t2\t3\t100\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRatings(strings.NewReader(tt.input))
			if !core.IsMalformedInput(err) {
				t.Errorf("error = %v, want MALFORMED_INPUT", err)
			}
		})
	}
}

func TestParseItemNames(t *testing.T) {
	input := "1|Toy Story (1995)|01-Jan-1995||http://example\n2|GoldenEye (1995)|01-Jan-1995||\n"

	names, err := ParseItemNames(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseItemNames() error = %v", err)
	}
	if got, _ := names.Name(context.Background(), 1); got != "Toy Story (1995)" {
		t.Errorf("Name(1) = %q, want Toy Story (1995)", got)
	}
}

func TestMapNamesNotFound(t *testing.T) {
	names := MapNames{1: "Toy Story (1995)"}
	_, err := names.Name(context.Background(), 99)
	if !core.IsNotFound(err) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}
