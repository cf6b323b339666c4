// Package usecasev1 定义本服务 usecase.v1.UseCaseService 对外暴露的消息结构。
package usecasev1

// Result 用例结果，endpoint_status 保留远端的原始状态
type Result struct {
	Status         string `json:"status"`
	EndpointStatus string `json:"endpoint_status,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Result    Result `json:"result"`
	AuthToken string `json:"auth_token,omitempty"`
}

type FetchUserRequest struct {
	UserId string `json:"user_id"`
}

type User struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

type FetchUserResponse struct {
	Result Result `json:"result"`
	User   *User  `json:"user,omitempty"`
}

type FetchUserProfileRequest struct {
	UserId string `json:"user_id"`
}

type UserProfile struct {
	UserId   string `json:"user_id"`
	FullName string `json:"full_name"`
	ImageUrl string `json:"image_url"`
}

type FetchUserProfileResponse struct {
	Result  Result       `json:"result"`
	Profile *UserProfile `json:"profile,omitempty"`
}

type UpdateUsernameRequest struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

type UpdateUsernameResponse struct {
	Result Result `json:"result"`
	User   *User  `json:"user,omitempty"`
}

type FetchReputationRequest struct{}

type FetchReputationResponse struct {
	Status     string `json:"status"`
	Reputation int32  `json:"reputation"`
}

type FetchContactsRequest struct {
	Filter string `json:"filter"`
}

type Contact struct {
	Id       string `json:"id"`
	FullName string `json:"full_name"`
	ImageUrl string `json:"image_url"`
}

type FetchContactsResponse struct {
	Contacts   []*Contact `json:"contacts,omitempty"`
	FailReason string     `json:"fail_reason,omitempty"`
}
