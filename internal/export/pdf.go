/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/

// Package export renders a plan as a printable PDF.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/josephgoksu/fitcoach/models"
)

// DefaultFileName is used when no output path is given.
const DefaultFileName = "fitness-plan.pdf"

// Layout in millimetres on A4.
const (
	marginTop    = 20.0
	pageBottom   = 270.0
	leftHeading  = 20.0
	leftItem     = 25.0
	lineStep     = 5.0
	titleSize    = 20.0
	headingSize  = 16.0
	bodySize     = 10.0
	titleGap     = 15.0
	headingGap   = 10.0
	documentFont = "Helvetica"
)

// Title is the first line of the document.
const Title = "Your Personalized Fitness Plan"

type writer struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	y   float64
}

func (w *writer) text(x float64, s string) {
	w.pdf.Text(x, w.y, w.tr(s))
}

// breakIfFull starts a new page once the cursor passes the bottom margin.
func (w *writer) breakIfFull() {
	if w.y > pageBottom {
		w.pdf.AddPage()
		w.y = marginTop
	}
}

func (w *writer) size(pt float64) {
	w.pdf.SetFontSize(pt)
}

// build lays the plan out: title, workout days with exercises, then meals with items.
func build(plan *models.FitnessPlan) (*fpdf.Fpdf, error) {
	if plan == nil {
		return nil, fmt.Errorf("no plan to export")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(Title, true)
	pdf.SetCreator("fitcoach", true)
	pdf.SetFont(documentFont, "", titleSize)
	pdf.AddPage()

	w := &writer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: marginTop}

	w.text(leftHeading, Title)
	w.y += titleGap

	w.size(headingSize)
	w.text(leftHeading, "Workout Plan")
	w.y += headingGap

	w.size(bodySize)
	for _, day := range plan.WorkoutPlan {
		w.text(leftHeading, day.Day)
		w.y += lineStep
		for _, ex := range day.Exercises {
			w.text(leftItem, fmt.Sprintf("- %s: %d sets x %s", ex.Name, ex.Sets, ex.Reps))
			w.y += lineStep
			w.breakIfFull()
		}
		w.y += lineStep
	}
	w.breakIfFull()

	w.size(headingSize)
	w.text(leftHeading, "Diet Plan")
	w.y += headingGap

	w.size(bodySize)
	for _, meal := range plan.DietPlan.Meals {
		w.text(leftHeading, meal.MealType+":")
		w.y += lineStep
		for _, item := range meal.Items {
			w.text(leftItem, "- "+item)
			w.y += lineStep
			w.breakIfFull()
		}
		w.y += lineStep
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return pdf, nil
}

// WritePDF renders plan to out.
func WritePDF(out io.Writer, plan *models.FitnessPlan) error {
	pdf, err := build(plan)
	if err != nil {
		return err
	}
	if err := pdf.Output(out); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// PDFBytes renders plan into memory.
func PDFBytes(plan *models.FitnessPlan) ([]byte, error) {
	var buf bytes.Buffer
	if err := WritePDF(&buf, plan); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePDF writes plan to path, or DefaultFileName when path is empty.
func SavePDF(path string, plan *models.FitnessPlan) (string, error) {
	if path == "" {
		path = DefaultFileName
	}
	data, err := PDFBytes(plan)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
