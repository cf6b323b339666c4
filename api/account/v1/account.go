// Package accountv1 定义远端账户服务 account.v1.AccountService 的消息结构（JSON 编码）。
package accountv1

// 远端接口返回的状态值
const (
	StatusSuccess      = "SUCCESS"
	StatusGeneralError = "GENERAL_ERROR"
	StatusAuthError    = "AUTH_ERROR"
	StatusServerError  = "SERVER_ERROR"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status    string `json:"status"`
	AuthToken string `json:"auth_token,omitempty"`
}

type FetchUserRequest struct {
	UserId string `json:"user_id"`
}

type FetchUserResponse struct {
	Status   string `json:"status"`
	UserId   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

type GetUserProfileRequest struct {
	UserId string `json:"user_id"`
}

type GetUserProfileResponse struct {
	Status   string `json:"status"`
	UserId   string `json:"user_id,omitempty"`
	FullName string `json:"full_name,omitempty"`
	ImageUrl string `json:"image_url,omitempty"`
}

type UpdateUsernameRequest struct {
	UserId   string `json:"user_id"`
	Username string `json:"username"`
}

type UpdateUsernameResponse struct {
	Status   string `json:"status"`
	UserId   string `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
}

type GetReputationRequest struct{}

type GetReputationResponse struct {
	Status     string `json:"status"`
	Reputation int32  `json:"reputation"`
}

type GetContactsRequest struct {
	Filter string `json:"filter"`
}

// ContactSchema 远端返回的联系人结构
type ContactSchema struct {
	Id              string `json:"id"`
	FullName        string `json:"full_name"`
	FullPhoneNumber string `json:"full_phone_number"`
	ImageUrl        string `json:"image_url"`
	Age             int32  `json:"age"`
}

type GetContactsResponse struct {
	Status   string           `json:"status"`
	Contacts []*ContactSchema `json:"contacts,omitempty"`
}
