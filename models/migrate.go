package models

// Tables 参与 AutoMigrate 的全部表
func Tables() []any {
	return []any{
		&User{},
		&Post{},
		&Comment{},
		&Bookmark{},
		&Like{},
		&Follow{},
		&Notification{},
		&WebhookEvent{},
	}
}
