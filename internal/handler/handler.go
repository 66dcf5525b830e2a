package handler

import "steak-log-server/internal/service"

type Handler struct {
	service *service.AppService
}

func NewHandler(appService *service.AppService) *Handler {
	return &Handler{service: appService}
}
