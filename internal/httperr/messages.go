package httperr

var messages = map[string]string{
	"invalid_request":         "Dados inválidos.",
	"missing_fields":          "Cliente, serviço e horário são obrigatórios.",
	"invalid_start_time":      "Horário inválido.",
	"invalid_status":          "Status inválido.",
	"invalid_price":           "Valor inválido.",
	"invalid_paid_amount":     "Valor pago inválido.",
	"invalid_date":            "Data inválida.",
	"invalid_id":              "Identificador inválido.",
	"invalid_theme":           "Tema inválido.",
	"invalid_phone":           "Telefone do cliente inválido.",
	"invalid_subscription":    "Inscrição de push inválida.",
	"missing_endpoint":        "Endpoint é obrigatório.",
	"appointment_not_found":   "Agendamento não encontrado.",
	"service_not_found":       "Serviço não encontrado.",
	"client_not_found":        "Cliente não encontrado.",
	"client_has_appointments": "Cliente possui agendamentos e não pode ser removido.",
	"unauthenticated":         "Não autenticado.",
	"invalid_token":           "Sessão inválida ou expirada.",
	"rate_limited":            "Muitas requisições. Tente novamente em instantes.",
	"internal_error":          "Erro interno do servidor.",
}

// Message devolve a mensagem pt-BR para um código conhecido.
func Message(code string) string {
	if m, ok := messages[code]; ok {
		return m
	}
	return messages["invalid_request"]
}
