package op

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ktalanov/ModelScrapOR/internal/db"
	"github.com/ktalanov/ModelScrapOR/internal/model"
	"github.com/ktalanov/ModelScrapOR/internal/utils/cache"
	"gorm.io/gorm/clause"
)

var settingCache = cache.New[model.SettingKey, string](16)

func SettingList(ctx context.Context) ([]model.Setting, error) {
	settings := make([]model.Setting, 0, settingCache.Len())
	for key, value := range settingCache.GetAll() {
		settings = append(settings, model.Setting{
			Key:   key,
			Value: value,
		})
	}
	return settings, nil
}

func SettingGetString(key model.SettingKey) (string, error) {
	setting, ok := settingCache.Get(key)
	if !ok {
		return "", fmt.Errorf("setting not found")
	}
	return setting, nil
}

func SettingGetInt(key model.SettingKey) (int, error) {
	setting, ok := settingCache.Get(key)
	if !ok {
		return 0, fmt.Errorf("setting not found")
	}
	return strconv.Atoi(setting)
}

func SettingSetString(key model.SettingKey, value string) error {
	valueCache, ok := settingCache.Get(key)
	if !ok {
		return fmt.Errorf("setting not found")
	}
	if valueCache == value {
		return nil
	}
	result := db.GetDB().Model(&model.Setting{Key: key}).Update("Value", value)
	if result.Error != nil {
		return fmt.Errorf("failed to set setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to set setting, key not found")
	}
	settingCache.Set(key, value)
	return nil
}

// settingRefreshCache loads all settings, seeding missing defaults so a
// fresh database starts fully populated.
func settingRefreshCache(ctx context.Context) error {
	defaults := model.DefaultSettings()
	if err := db.GetDB().WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error; err != nil {
		return err
	}

	settings := make([]model.Setting, 0, len(defaults))
	if err := db.GetDB().WithContext(ctx).Find(&settings).Error; err != nil {
		return err
	}
	settingCache.Clear()
	for _, setting := range settings {
		settingCache.Set(setting.Key, setting.Value)
	}
	return nil
}
