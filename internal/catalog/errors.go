package catalog

import "errors"

var (
	ErrEmptyName       = errors.New("ürün adı boş olamaz")
	ErrInvalidPrice    = errors.New("fiyat negatif olamaz")
	ErrInvalidQuantity = errors.New("miktar 0'dan büyük olmalı")
	ErrDuplicateName   = errors.New("bu isimde başka bir ürün var")
)
