package ds

import "time"

// Session - активная админская сессия.
// Сессия валидна, пока лежит в хранилище активных сессий
// и с момента создания прошло не больше двух часов.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"createdAt"`
}
