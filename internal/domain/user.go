package domain

// User is a customer record owned by the users service, looked up by CPF.
type User struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	CPF      string `json:"cpf"`
}
