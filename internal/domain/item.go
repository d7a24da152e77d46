package domain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Item é um produto do catálogo. Os campos só são definidos por Campaign.NewItem.
type Item struct {
	code           string
	description    string
	brand          string
	weightKg       *float64
	classification Classification
}

func (i *Item) Code() string        { return i.code }
func (i *Item) Description() string { return i.description }
func (i *Item) Brand() string       { return i.brand }

// WeightKg retorna o peso e se ele foi informado
func (i *Item) WeightKg() (float64, bool) {
	if i.weightKg == nil {
		return 0, false
	}
	return *i.weightKg, true
}

func (i *Item) IsStar() bool      { return i.classification.Star }
func (i *Item) IsCategoryA() bool { return i.classification.CategoryA }
func (i *Item) IsCategoryB() bool { return i.classification.CategoryB }

type itemJSON struct {
	Code        string   `json:"cod_item"`
	Description string   `json:"descripcion"`
	Brand       string   `json:"marca"`
	WeightKg    *float64 `json:"peso_kg"`
	Star        bool     `json:"es_estrella"`
	CategoryA   bool     `json:"es_senda20"`
	CategoryB   bool     `json:"es_jaspe3kg"`
}

func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Code:        i.code,
		Description: i.description,
		Brand:       i.brand,
		WeightKg:    i.weightKg,
		Star:        i.classification.Star,
		CategoryA:   i.classification.CategoryA,
		CategoryB:   i.classification.CategoryB,
	})
}
