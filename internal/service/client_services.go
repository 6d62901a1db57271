package service

import (
	"github.com/Theworld7/VisiFind/internal/adapter"
	"github.com/Theworld7/VisiFind/internal/logger"
	"github.com/Theworld7/VisiFind/internal/store"
	"github.com/Theworld7/VisiFind/internal/validators"
)

// ClientServices groups every domain service of the application.
type ClientServices struct {
	BookmarkService    BookmarkService
	BackgroundService  BackgroundService
	AppSettingsService AppSettingsService
	FoodLibraryService FoodLibraryService
	IntakeService      IntakeService
	BackupService      BackupService
	BackupJob          BackupJob

	// AppInfoService is set by the composition root, it does not depend on
	// storage.
	AppInfoService AppInfoService
}

// NewClientServices wires the services over storages. wallpaper may be nil.
func NewClientServices(storages *store.ClientStorages, wallpaper adapter.WallpaperAdapter, logger *logger.Logger) *ClientServices {
	validator := validators.NewDomainValidator()

	bookmarkSvc := NewClientBookmarkService(storages.BookmarkRepository, validator, logger)
	backgroundSvc := NewClientBackgroundService(storages.BookmarkSettings, wallpaper, validator, logger)
	foodSvc := NewClientFoodLibraryService(storages.FoodRepository, validator, logger)
	intakeSvc := NewClientIntakeService(storages.IntakeRepository, storages.IntakeSettings, validator, logger)
	backupSvc := NewClientBackupService(bookmarkSvc, backgroundSvc, foodSvc, intakeSvc, logger)

	return &ClientServices{
		BookmarkService:    bookmarkSvc,
		BackgroundService:  backgroundSvc,
		AppSettingsService: NewClientAppSettingsService(storages.BookmarkSettings, logger),
		FoodLibraryService: foodSvc,
		IntakeService:      intakeSvc,
		BackupService:      backupSvc,
		BackupJob:          NewClientBackupJob(backupSvc, logger),
	}
}
