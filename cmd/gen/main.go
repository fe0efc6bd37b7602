package main

import (
	"pulse/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CreatorModel{},
		model.HandleAliasModel{},
		model.CampaignModel{},
		model.CampaignParticipantModel{},
		model.CampaignHandleOverrideModel{},
		model.HandleMappingModel{},
		model.MetricSnapshotModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
