package utils

// StringPtr возвращает указатель на строку, удобно для частичных DTO.
func StringPtr(s string) *string { return &s }
