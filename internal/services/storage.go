package services

import (
	"fmt"

	"github.com/dmitrijs2005/housesell/internal/common"
)

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, common.ErrStorage, err)
}
