package container

import (
	app "pcb-advisor/internal/application"
	"pcb-advisor/internal/domain/port"
)

type Container struct {
	UserService     *app.UserService
	AnalyzerService *app.AnalyzerService
}

func New(userRepo port.UserRepository, extractor port.FeatureExtractor) *Container {
	userService := app.NewUserService(userRepo)
	analyzerService := app.NewAnalyzerService(extractor)

	return &Container{
		UserService:     userService,
		AnalyzerService: analyzerService,
	}
}
