package scannerService

import (
	"SmartObjectAI/internal/api/scanner"
	scannerRepository "SmartObjectAI/internal/api/scanner/repository"
	"SmartObjectAI/pkg/audio"
	"SmartObjectAI/pkg/detector"
	"SmartObjectAI/pkg/gemini"
	"SmartObjectAI/pkg/s3"
	"SmartObjectAI/pkg/utils"
	"context"
	"mime/multipart"

	"github.com/sirupsen/logrus"
)

type ScannerService interface {
	Detect() DetectDomain
	Command() CommandDomain
}

type DetectDomain interface {
	DetectObject(c context.Context, userID string, imageDataURL string) (scanner.DetectObjectResponse, error)
	DetectFrame(c context.Context, imageDataURL string) (scanner.DetectObjectResponse, error)
	Categories() []scanner.CategoryResponse
	Category(tag string) (scanner.CategoryResponse, error)
}

type CommandDomain interface {
	ExecuteCommand(c context.Context, userID string, req scanner.ExecuteCommandRequest) (scanner.ExecuteCommandResponse, error)
	TranscribeCommand(c context.Context, file *multipart.FileHeader) (string, error)
	Speak(c context.Context, text string) ([]byte, error)
}

type scannerService struct {
	log               *logrus.Logger
	scannerRepository scannerRepository.Repository

	detectDomain  DetectDomain
	commandDomain CommandDomain
}

func (s *scannerService) Detect() DetectDomain {
	return s.detectDomain
}

func (s *scannerService) Command() CommandDomain {
	return s.commandDomain
}

type detectDomainImpl struct {
	log          *logrus.Logger
	repo         scannerRepository.Repository
	detector     detector.IDetector
	geminiClient gemini.IGemini
	s3Client     s3.ItfS3
	utils        utils.IUtils
}

type commandDomainImpl struct {
	log         *logrus.Logger
	repo        scannerRepository.Repository
	transcriber audio.ITranscriber
	tts         audio.ITTS
	utils       utils.IUtils
}

func New(log *logrus.Logger,
	scannerRepo scannerRepository.Repository,
	objectDetector detector.IDetector,
	geminiClient gemini.IGemini,
	s3Client s3.ItfS3,
	transcriber audio.ITranscriber,
	tts audio.ITTS,
	utils utils.IUtils,
) ScannerService {
	return &scannerService{
		log:               log,
		scannerRepository: scannerRepo,

		detectDomain: &detectDomainImpl{
			log:          log,
			repo:         scannerRepo,
			detector:     objectDetector,
			geminiClient: geminiClient,
			s3Client:     s3Client,
			utils:        utils,
		},
		commandDomain: &commandDomainImpl{
			log:         log,
			repo:        scannerRepo,
			transcriber: transcriber,
			tts:         tts,
			utils:       utils,
		},
	}
}
