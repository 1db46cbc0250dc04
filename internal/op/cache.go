package op

import (
	"context"
	"fmt"
	"time"
)

func InitCache() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := settingRefreshCache(ctx); err != nil {
		return fmt.Errorf("setting refresh cache error: %v", err)
	}
	if err := catalogRefreshCache(ctx); err != nil {
		return fmt.Errorf("catalog refresh cache error: %v", err)
	}
	return nil
}
