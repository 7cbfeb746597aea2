package services

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/kaanb/courseboard/internal/app/models"
	"github.com/kaanb/courseboard/internal/pkg/apperrors"
)

// An enrollment update naming no ids is rejected before any state is read or
// written, so a zero-value service suffices here.
func TestUpdateEnrollmentRejectsEmptyUpdate(t *testing.T) {
	s := &courseServiceImpl{}

	err := s.UpdateEnrollment(context.Background(), 1, models.RoleAdmin, 4, nil, nil)
	if !errors.Is(err, apperrors.ErrNoUpdatableFields) {
		t.Fatalf("err = %v, want ErrNoUpdatableFields", err)
	}

	err = s.UpdateEnrollment(context.Background(), 1, models.RoleAdmin, 4, []int64{}, []int64{})
	if !errors.Is(err, apperrors.ErrNoUpdatableFields) {
		t.Fatalf("err = %v, want ErrNoUpdatableFields", err)
	}
}

func TestDedupIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []int64
		want []int64
	}{
		{"nil", nil, nil},
		{"single", []int64{7}, []int64{7}},
		{"no duplicates", []int64{7, 8, 9}, []int64{7, 8, 9}},
		{"duplicates collapse", []int64{7, 8, 7, 9, 8, 7}, []int64{7, 8, 9}},
		{"all equal", []int64{7, 7, 7}, []int64{7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dedupIDs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("dedupIDs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
