package dto

type RegisterRequestDTO struct {
	Nome     string `json:"nome" validate:"required" example:"Maria Souza"`
	CPF      string `json:"cpf" validate:"required" example:"52998224725"`
	Loja     string `json:"loja" validate:"required" example:"Matriz"`
	Cidade   string `json:"cidade" validate:"required" example:"OURINHOS"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequestDTO struct {
	CPF      string `json:"cpf" validate:"required" example:"52998224725"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID     string `json:"id"`
	CPF    string `json:"cpf"`
	Nome   string `json:"nome"`
	Loja   string `json:"loja"`
	Cidade string `json:"cidade"`
	Role   string `json:"role" example:"USER"`
}

type AuthResponseDTO struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
