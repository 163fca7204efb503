/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable_ColumnWidths(t *testing.T) {
	table := &Table{
		Headers: []string{"Exercise", "Sets", "Reps"},
		Rows: [][]string{
			{"Squat", "3", "10"},
			{"Bulgarian split squat", "4", "8-10"},
		},
	}
	assert.Equal(t, []int{21, 4, 4}, table.ColumnWidths())
}

func TestTable_ColumnWidths_MaxWidth(t *testing.T) {
	table := &Table{
		Headers:  []string{"Exercise", "Rest"},
		Rows:     [][]string{{"Plank", "rest as long as you need between the sets"}},
		MaxWidth: 20,
	}
	assert.Equal(t, []int{8, 20}, table.ColumnWidths())
}

func TestTable_Render(t *testing.T) {
	table := &Table{
		Headers:  []string{"Exercise", "Sets"},
		Rows:     [][]string{{"Lunges", "3"}, {"Mountain climbers with a twist", "2"}},
		MaxWidth: 12,
	}
	out := table.Render()
	assert.Contains(t, out, "Exercise")
	assert.Contains(t, out, "Lunges")
	assert.Contains(t, out, "Mountain cl…")
	assert.Contains(t, out, "─")
}

func TestTable_Render_Empty(t *testing.T) {
	assert.Empty(t, (&Table{}).Render())
}

func TestClip(t *testing.T) {
	assert.Equal(t, "héllo", clip("héllo", 5))
	assert.Equal(t, "hé…", clip("héllo", 3))
	assert.Equal(t, "…", clip("héllo", 1))
}
