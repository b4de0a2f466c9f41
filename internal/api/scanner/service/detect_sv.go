package scannerService

import (
	"SmartObjectAI/internal/api/scanner"
	"SmartObjectAI/internal/entity"
	"SmartObjectAI/pkg/catalog"
	contextPkg "SmartObjectAI/pkg/context"
	"SmartObjectAI/pkg/detector"
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	sourceRemote    = "Remote Detection"
	sourceGemini    = "Gemini Detection"
	sourceSimulated = "Simulated Detection"

	simulatedConfidence = 0.85
	geminiTimeout       = 3 * time.Second
)

func (s *detectDomainImpl) DetectObject(c context.Context, userID string, imageDataURL string) (scanner.DetectObjectResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	prediction, source := s.runDetectionChain(c, requestID, imageDataURL)

	tag := catalog.Normalize(prediction.Label)
	category, ok := catalog.Lookup(tag)
	if !ok {
		category, _ = catalog.Lookup("other")
	}

	imageURL := s.uploadImage(requestID, imageDataURL)

	res := scanner.DetectObjectResponse{
		Object:     category.Tag,
		Name:       category.Name,
		DeviceType: category.DeviceType,
		Confidence: catalog.Percent(prediction.Confidence),
		Commands:   category.Commands,
		Source:     source,
		ImageURL:   imageURL,
	}

	scanID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate scan ID")
		return scanner.DetectObjectResponse{}, err
	}

	repo, err := s.repo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return scanner.DetectObjectResponse{}, err
	}

	if err := repo.Scans.CreateScan(c, entity.ScannedObject{
		ID:              scanID,
		UserID:          userID,
		ObjectName:      category.Name,
		ObjectType:      category.Tag,
		ImageURL:        imageURL,
		ConfidenceScore: prediction.Confidence,
	}); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to persist scanned object")
		return scanner.DetectObjectResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"object":     category.Tag,
		"source":     source,
		"confidence": res.Confidence,
	}).Info("Object detected")

	return res, nil
}

// DetectFrame runs the detection chain for one live frame. Frames are
// transient, nothing is persisted and no image is uploaded.
func (s *detectDomainImpl) DetectFrame(c context.Context, imageDataURL string) (scanner.DetectObjectResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	prediction, source := s.runDetectionChain(c, requestID, imageDataURL)

	tag := catalog.Normalize(prediction.Label)
	category, ok := catalog.Lookup(tag)
	if !ok {
		category, _ = catalog.Lookup("other")
	}

	return scanner.DetectObjectResponse{
		Object:     category.Tag,
		Name:       category.Name,
		DeviceType: category.DeviceType,
		Confidence: catalog.Percent(prediction.Confidence),
		Commands:   category.Commands,
		Source:     source,
	}, nil
}

// runDetectionChain tries each tier once, in order. Tier errors are
// logged and swallowed so the chain always yields a prediction.
func (s *detectDomainImpl) runDetectionChain(c context.Context, requestID string, imageDataURL string) (detector.Prediction, string) {
	prediction, err := s.detector.Detect(c, imageDataURL)
	if err == nil {
		return prediction, sourceRemote
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"error":      err.Error(),
	}).Warn("Remote detection failed, falling back to Gemini")

	imageData, decodeErr := s.utils.DecodeDataURL(imageDataURL)
	if decodeErr == nil && s.geminiClient != nil {
		geminiCtx, cancel := context.WithTimeout(c, geminiTimeout)
		defer cancel()

		result, geminiErr := s.geminiClient.ClassifyObject(geminiCtx, imageData)
		if geminiErr == nil {
			return detector.Prediction{Label: result.Class, Confidence: result.Confidence}, sourceGemini
		}

		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      geminiErr.Error(),
		}).Warn("Gemini detection failed, falling back to simulation")
	}

	category := catalog.Random()
	return detector.Prediction{Label: category.Tag, Confidence: simulatedConfidence}, sourceSimulated
}

// uploadImage stores the frame in S3. Failure is tolerated, the scan
// row is then persisted without an image URL.
func (s *detectDomainImpl) uploadImage(requestID string, imageDataURL string) string {
	if s.s3Client == nil {
		return ""
	}

	imageData, err := s.utils.DecodeDataURL(imageDataURL)
	if err != nil {
		return ""
	}

	imageURL, err := s.s3Client.UploadBytes(imageData, "scan.jpg")
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("Failed to upload scan image")
		return ""
	}

	return imageURL
}

func (s *detectDomainImpl) Categories() []scanner.CategoryResponse {
	all := catalog.All()
	res := make([]scanner.CategoryResponse, 0, len(all))
	for _, category := range all {
		res = append(res, makeCategoryResponse(category))
	}
	return res
}

func (s *detectDomainImpl) Category(tag string) (scanner.CategoryResponse, error) {
	category, ok := catalog.Lookup(tag)
	if !ok {
		return scanner.CategoryResponse{}, scanner.ErrCategoryNotFound
	}
	return makeCategoryResponse(category), nil
}

func makeCategoryResponse(category catalog.Category) scanner.CategoryResponse {
	return scanner.CategoryResponse{
		Tag:        category.Tag,
		Name:       category.Name,
		DeviceType: category.DeviceType,
		Commands:   category.Commands,
		Actions:    category.Actions,
	}
}
