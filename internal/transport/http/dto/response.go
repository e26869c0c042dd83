package dto

import "github.com/baechuer/real-time-ressys/services/resource-service/internal/transport/http/response"

const HealthMessage = "API is running!"

func Health() response.Message { return response.Message{Message: HealthMessage} }

func DeletedMessage(msg string) response.Message { return response.Message{Message: msg} }
