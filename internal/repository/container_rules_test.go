package repository

import (
	"testing"

	"elearning_backend/internal/model"
)

func container(id uint, order int) model.ExamContainer {
	c := model.ExamContainer{Order: order}
	c.ID = id
	return c
}

func TestRenumberPlan(t *testing.T) {
	tests := []struct {
		name     string
		siblings []model.ExamContainer
		want     map[uint]int
	}{
		{
			name: "no siblings",
			want: map[uint]int{},
		},
		{
			name:     "already contiguous",
			siblings: []model.ExamContainer{container(10, 1), container(11, 2), container(12, 3)},
			want:     map[uint]int{},
		},
		{
			name:     "gap after a middle delete",
			siblings: []model.ExamContainer{container(10, 1), container(12, 3), container(13, 4)},
			want:     map[uint]int{12: 2, 13: 3},
		},
		{
			name:     "first slot freed",
			siblings: []model.ExamContainer{container(12, 2), container(13, 5)},
			want:     map[uint]int{12: 1, 13: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := renumberPlan(tt.siblings)
			if len(got) != len(tt.want) {
				t.Fatalf("plan = %v, want %v", got, tt.want)
			}
			for id, order := range tt.want {
				if got[id] != order {
					t.Errorf("plan[%d] = %d, want %d", id, got[id], order)
				}
			}
		})
	}
}
