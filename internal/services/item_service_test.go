package services

import (
	"errors"
	"testing"

	"xetasuite/internal/models"
)

func TestValidateItem(t *testing.T) {
	valid := models.Item{
		Name:              "Degreaser",
		Reference:         "DEG-01",
		SiteID:            1,
		WarningThreshold:  10,
		CriticalThreshold: 3,
		Price:             12.5,
	}

	cases := []struct {
		name     string
		mutate   func(*models.Item)
		badField string
	}{
		{"valid", func(i *models.Item) {}, ""},
		{"missing name", func(i *models.Item) { i.Name = "  " }, "name"},
		{"missing reference", func(i *models.Item) { i.Reference = "" }, "reference"},
		{"missing site", func(i *models.Item) { i.SiteID = 0 }, "site_id"},
		{"negative threshold", func(i *models.Item) { i.CriticalThreshold = -1 }, "thresholds"},
		{"critical above warning", func(i *models.Item) { i.CriticalThreshold = 20 }, "critical_threshold"},
		{"negative price", func(i *models.Item) { i.Price = -1 }, "price"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := valid
			tc.mutate(&item)

			err := validateItem(item)
			if tc.badField == "" {
				if err != nil {
					t.Fatalf("expected no error got %v", err)
				}
				return
			}

			var v *models.ValidationError
			if !errors.As(err, &v) {
				t.Fatalf("expected validation error got %v", err)
			}
			if _, ok := v.Fields[tc.badField]; !ok {
				t.Fatalf("expected error on field %s got %v", tc.badField, v.Fields)
			}
		})
	}
}
