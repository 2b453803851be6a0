package readmodel

type UserRM struct {
	ID                string  `json:"id"`
	Name              string  `json:"name"`
	NotificationToken *string `json:"-"`
}
