package processor

import (
	errorsGo "github.com/go-errors/errors"
	"go.uber.org/zap"

	"github.com/phambaophuc/imgresize/internal/models"
	"github.com/phambaophuc/imgresize/internal/prompt"
	"github.com/phambaophuc/imgresize/pkg/utils"
)

// BrokenProportionsQuestion is asked before an explicit width/height pair
// changes the image proportions.
const BrokenProportionsQuestion = "Original image proportions are different from the input values. Continue with broken proportions?"

// ImageProcessor runs a single resize from a validated ResizeRequest.
type ImageProcessor struct {
	codec   Codec
	confirm prompt.ConfirmFunc
	log     *zap.Logger
}

// Result describes a finished run. When Aborted is set the operator declined
// to continue and nothing was written.
type Result struct {
	SourcePath string
	OutputPath string
	Original   models.ImageDimensions
	Size       models.ImageDimensions
	Aborted    bool
}

func NewImageProcessor(codec Codec, confirm prompt.ConfirmFunc, log *zap.Logger) *ImageProcessor {
	if confirm == nil {
		confirm = prompt.AlwaysYes
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ImageProcessor{codec: codec, confirm: confirm, log: log}
}

// Process opens the source image, resizes it according to req and writes the
// result to req.OutputDir under a name that carries the final size.
func (p *ImageProcessor) Process(req *models.ResizeRequest) (*Result, error) {
	if req.OutputDefaulted {
		p.log.Info("No output location given, saving next to the original image",
			zap.String("output_dir", req.OutputDir))
	}

	if err := p.codec.CheckFormat(utils.OutputFilename(req.SourcePath, models.ImageDimensions{})); err != nil {
		return nil, errorsGo.WrapPrefix(ErrUnsupportedFormat, req.SourcePath, 0)
	}

	img, err := p.codec.Open(req.SourcePath)
	if err != nil {
		return nil, errorsGo.New(&SourceOpenError{Path: req.SourcePath, Err: err})
	}

	bounds := img.Bounds()
	result := &Result{
		SourcePath: req.SourcePath,
		Original:   models.ImageDimensions{Width: bounds.Dx(), Height: bounds.Dy()},
	}

	if ProportionsBroken(result.Original, req.Mode) {
		p.log.Warn("Original image proportions are different from the input values",
			zap.Stringer("original", result.Original),
			zap.Float64("original_proportions", Proportions(result.Original)))
		if !p.confirm(BrokenProportionsQuestion) {
			p.log.Info("Resize cancelled by user")
			result.Aborted = true
			return result, nil
		}
	}

	result.Size = CalculateDimensions(result.Original, req.Mode)
	if err := CheckDimensions(result.Size); err != nil {
		return nil, err
	}
	resized := p.codec.Resize(img, result.Size)

	result.OutputPath = req.OutputDir + utils.OutputFilename(req.SourcePath, result.Size)
	if err := p.codec.Save(resized, result.OutputPath); err != nil {
		return nil, errorsGo.New(&SaveError{Path: result.OutputPath, Err: err})
	}

	p.log.Info("Image resized",
		zap.String("source", result.SourcePath),
		zap.String("output", result.OutputPath),
		zap.Int("width", result.Size.Width),
		zap.Int("height", result.Size.Height))

	return result, nil
}
