package utils

import (
	"fmt"
	"regexp"
	"strconv"
)

var (
	skuPattern        = regexp.MustCompile(`^PROD-(\d+)$`)
	cartItemIDPattern = regexp.MustCompile(`^cart_item_(\d+)$`)
	numericPattern    = regexp.MustCompile(`^\d+$`)
)

// EncodeSKU renders a product id as its external SKU, zero-padded to at
// least three digits: 7 -> PROD-007, 1234 -> PROD-1234.
func EncodeSKU(productID int) string {
	return fmt.Sprintf("PROD-%03d", productID)
}

// ParseSKU is the exact-match inverse of EncodeSKU. Anything that is not
// PROD- followed by digits is rejected.
func ParseSKU(sku string) (int, bool) {
	match := skuPattern.FindStringSubmatch(sku)
	if match == nil {
		return 0, false
	}
	id, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	return id, true
}

// EncodeCartItemID renders a cart item id in its external form: cart_item_7.
func EncodeCartItemID(itemID int) string {
	return fmt.Sprintf("cart_item_%d", itemID)
}

// ParseCartItemID accepts either the prefixed form (cart_item_7) or a bare
// numeric string.
func ParseCartItemID(raw string) (int, bool) {
	if match := cartItemIDPattern.FindStringSubmatch(raw); match != nil {
		id, err := strconv.Atoi(match[1])
		return id, err == nil
	}
	if numericPattern.MatchString(raw) {
		id, err := strconv.Atoi(raw)
		return id, err == nil
	}
	return 0, false
}
