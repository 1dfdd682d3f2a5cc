package main

import (
	"agrinet/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserProfileModel{},
		model.FollowModel{},
		model.ConversationModel{},
		model.ConversationParticipantModel{},
		model.MessageModel{},
		model.NotificationModel{},
		model.DiagnosisSubmissionModel{},
		model.DeviceModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
