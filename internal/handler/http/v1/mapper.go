package v1

import "github.com/shenikar/attendance_system/internal/models"

// DTOToClockLogModel преобразует DTO отправки отметки в доменную модель
func DTOToClockLogModel(dto SubmitClockLogRequest) *models.ClockLog {
	return &models.ClockLog{
		ID:        dto.ID,
		UserID:    dto.UserID,
		CheckType: models.CheckType(dto.CheckType),
		CheckTime: dto.CheckTime,
		Address:   dto.Address,
		Latitude:  dto.Latitude,
		Longitude: dto.Longitude,
		Remarks:   dto.Remarks,
	}
}

// ModelToClockLogResponse преобразует доменную модель в DTO для ответа
func ModelToClockLogResponse(model *models.ClockLog) *ClockLogResponse {
	return &ClockLogResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		CheckType: string(model.CheckType),
		CheckTime: model.CheckTime,
		Address:   model.Address,
		Latitude:  model.Latitude,
		Longitude: model.Longitude,
		Remarks:   model.Remarks,
	}
}

// ModelsToClockLogResponses преобразует слайс моделей в слайс DTO
func ModelsToClockLogResponses(models []*models.ClockLog) []*ClockLogResponse {
	responses := make([]*ClockLogResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToClockLogResponse(model)
	}
	return responses
}
