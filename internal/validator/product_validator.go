package validator

import "strings"

// ProductInput は商品フォームの入力。
type ProductInput struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Image      string `json:"image"`
	CategoryID int64  `json:"category_id"`
}

// ValidateProduct は商品入力を検証し、正常なら正規化済みの値を返す。
func ValidateProduct(in ProductInput) (ProductInput, []Issue) {
	var issues []Issue

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		issues = append(issues, Issue{Field: "name", Message: "The Name of the Product is Required"})
	}
	if in.Price <= 0 {
		issues = append(issues, Issue{Field: "price", Message: "Price must be a number greater than 0"})
	}
	if in.CategoryID <= 0 {
		issues = append(issues, Issue{Field: "category_id", Message: "The Category is Required"})
	}
	if strings.TrimSpace(in.Image) == "" {
		issues = append(issues, Issue{Field: "image", Message: "The Image is Required"})
	}

	if len(issues) > 0 {
		return ProductInput{}, issues
	}
	return in, nil
}

// ValidateSearchTerm は検索キーワードを検証する。
func ValidateSearchTerm(raw string) (string, []Issue) {
	term := strings.TrimSpace(raw)
	if term == "" {
		return "", []Issue{{Field: "search", Message: "The Search Term cannot be empty"}}
	}
	return term, nil
}
