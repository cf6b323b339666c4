package model

// Event 领域事件，只通过类型区分
type Event interface {
	EventName() string
}

// LoggedInEvent 登录成功
type LoggedInEvent struct{}

func (LoggedInEvent) EventName() string { return "logged_in" }

// UserDetailsChangedEvent 用户信息已修改
type UserDetailsChangedEvent struct{}

func (UserDetailsChangedEvent) EventName() string { return "user_details_changed" }

// UserFetchedEvent 用户信息已从远端拉取
type UserFetchedEvent struct{}

func (UserFetchedEvent) EventName() string { return "user_fetched" }
