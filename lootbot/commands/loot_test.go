package commands

import (
	"reflect"
	"strings"
	"testing"
)

func TestResolveLimit(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		supplied bool
		want     int
		wantErr  bool
	}{
		{name: "default when absent", limit: 0, supplied: false, want: 10},
		{name: "zero rejected", limit: 0, supplied: true, wantErr: true},
		{name: "negative rejected", limit: -5, supplied: true, wantErr: true},
		{name: "within range", limit: 7, supplied: true, want: 7},
		{name: "at cap", limit: 50, supplied: true, want: 50},
		{name: "above cap clamped", limit: 1000, supplied: true, want: 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveLimit(tt.limit, tt.supplied)
			if (err != nil) != tt.wantErr {
				t.Errorf("ResolveLimit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err == nil && got != tt.want {
				t.Errorf("ResolveLimit() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveTagFilter(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		hasTags bool
		want    []string
		wantErr string
	}{
		{name: "absent is a no-op", raw: "", hasTags: false, want: nil},
		{name: "parsed and normalized", raw: " Cursed ,RARE", hasTags: true, want: []string{"cursed", "rare"}},
		{name: "rejected without tag column", raw: "cursed", hasTags: false, wantErr: "no tags column"},
		{name: "rejected when empty after parsing", raw: " , ,", hasTags: true, wantErr: "at least one tag"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveTagFilter(tt.raw, tt.hasTags)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ResolveTagFilter() error = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Errorf("ResolveTagFilter() unexpected error = %v", err)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveTagFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}
