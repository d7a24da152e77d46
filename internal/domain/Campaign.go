package domain

import (
	"slices"
	"strings"
)

// Marcador fixo da categoria A: a descrição também precisa citar o peso de 20kg
const categoryAWeightMarker = "20"

// Campaign reúne os literais da campanha de marketing vigente.
// Trocar de campanha é trocar estes valores, não a lógica de Classify.
type Campaign struct {
	StarBrandPrefix      string
	CategoryACode        string
	CategoryADescription string
	CategoryBBrand       string
	CategoryBMinWeightKg float64
	CategoryBCodes       []string
}

// Classification são as três flags derivadas de um item. São independentes entre si.
type Classification struct {
	Star      bool
	CategoryA bool
	CategoryB bool
}

func DefaultCampaign() Campaign {
	return Campaign{
		StarBrandPrefix:      "PETS PLUS",
		CategoryACode:        "77700001",
		CategoryADescription: "SENDA AD",
		CategoryBBrand:       "JASPE",
		CategoryBMinWeightKg: 3.0,
		CategoryBCodes: []string{
			"900906",
			"900905",
			"900908",
			"900910",
			"900919",
			"900911",
			"900907",
			"900909",
			"900920",
			"900912",
		},
	}
}

// Classify aplica as regras da campanha a um item. Peso ausente conta como 0.
func (c Campaign) Classify(code, description, brand string, weightKg *float64) Classification {
	brandUp := strings.ToUpper(brand)
	descUp := strings.ToUpper(description)

	var weight float64
	if weightKg != nil {
		weight = *weightKg
	}

	return Classification{
		Star: strings.HasPrefix(brandUp, strings.ToUpper(c.StarBrandPrefix)),
		CategoryA: code == c.CategoryACode ||
			(strings.Contains(descUp, strings.ToUpper(c.CategoryADescription)) && strings.Contains(descUp, categoryAWeightMarker)),
		CategoryB: (brandUp == strings.ToUpper(c.CategoryBBrand) && weight >= c.CategoryBMinWeightKg) ||
			slices.Contains(c.CategoryBCodes, code),
	}
}

// NewItem constrói um item imutável já classificado pela campanha
func (c Campaign) NewItem(code, description, brand string, weightKg *float64) *Item {
	var weight *float64
	if weightKg != nil {
		w := *weightKg
		weight = &w
	}

	return &Item{
		code:           code,
		description:    description,
		brand:          brand,
		weightKg:       weight,
		classification: c.Classify(code, description, brand, weightKg),
	}
}
