package services

import (
	"fmt"
	"math"
	"sync"

	"github.com/sugarme/tokenizer"
	"github.com/sugarme/tokenizer/pretrained"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/akozadaev/go_course_comparison_system/internal/config"
	"github.com/akozadaev/go_course_comparison_system/internal/models"
)

// Метки закрытого набора классов модели тональности.
// Порядок соответствует выходному слою модели: [negative, positive].
const (
	LabelNegative = "negative"
	LabelPositive = "positive"
)

// Classifier описывает батчевую классификацию текстов по тональности.
// Результаты возвращаются в порядке входных текстов.
type Classifier interface {
	AnalyzeBatch(texts []string) ([]models.SentimentPrediction, error)
}

// SentimentProcessor владеет жизненным циклом обученной ONNX модели
// классификации тональности и её токенизатора.
//
// Десериализация модели дорогая, поэтому загрузка выполняется лениво,
// ровно один раз на процесс (sync.Once), при первом обращении.
// После загрузки модель считается неизменяемой, чтение без блокировок.
// Путь перезагрузки модели не предусмотрен.
type SentimentProcessor struct {
	modelPath     string
	tokenizerPath string
	ortLibPath    string
	maxSeqLen     int

	loadOnce sync.Once
	loadErr  error
	session  *ort.DynamicAdvancedSession
	tk       *tokenizer.Tokenizer
}

// NewSentimentProcessor создает процессор без загрузки модели.
// Сама модель будет загружена при первом вызове AnalyzeBatch.
func NewSentimentProcessor(cfg *config.Config) *SentimentProcessor {
	return &SentimentProcessor{
		modelPath:     cfg.SentimentModelPath,
		tokenizerPath: cfg.SentimentTokenizerPath,
		ortLibPath:    cfg.OnnxRuntimePath,
		maxSeqLen:     cfg.SentimentMaxSeqLen,
	}
}

// load выполняет однократную инициализацию onnxruntime, токенизатора и сессии.
func (p *SentimentProcessor) load() {
	if p.ortLibPath != "" {
		ort.SetSharedLibraryPath(p.ortLibPath)
	}
	if !ort.IsInitialized() {
		if err := ort.InitializeEnvironment(); err != nil {
			p.loadErr = fmt.Errorf("failed to initialize onnxruntime: %w", err)
			return
		}
	}

	tk, err := pretrained.FromFile(p.tokenizerPath)
	if err != nil {
		p.loadErr = fmt.Errorf("failed to load tokenizer: %w", err)
		return
	}

	session, err := ort.NewDynamicAdvancedSession(
		p.modelPath,
		[]string{"input_ids", "attention_mask"},
		[]string{"logits"},
		nil,
	)
	if err != nil {
		p.loadErr = fmt.Errorf("failed to load sentiment model: %w", err)
		return
	}

	p.tk = tk
	p.session = session
}

// ensureLoaded гарантирует однократную загрузку модели даже при
// конкурентном первом обращении из нескольких горутин.
func (p *SentimentProcessor) ensureLoaded() error {
	p.loadOnce.Do(p.load)
	return p.loadErr
}

// AnalyzeBatch классифицирует пачку текстов и возвращает метку и уверенность
// для каждого текста в порядке входа. Первый вызов загружает модель,
// последующие выполняют только инференс.
func (p *SentimentProcessor) AnalyzeBatch(texts []string) ([]models.SentimentPrediction, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	if err := p.ensureLoaded(); err != nil {
		return nil, err
	}

	// Токенизация всего батча; последовательности выравниваются нулями
	// до длины самой длинной, но не больше maxSeqLen.
	encoded := make([][]int64, len(texts))
	seqLen := 0
	for i, text := range texts {
		en, err := p.tk.EncodeSingle(text, true)
		if err != nil {
			return nil, fmt.Errorf("failed to tokenize text: %w", err)
		}
		ids := en.Ids
		if len(ids) > p.maxSeqLen {
			ids = ids[:p.maxSeqLen]
		}
		row := make([]int64, len(ids))
		for j, id := range ids {
			row[j] = int64(id)
		}
		encoded[i] = row
		if len(row) > seqLen {
			seqLen = len(row)
		}
	}

	batch := len(texts)
	inputIDs := make([]int64, batch*seqLen)
	attentionMask := make([]int64, batch*seqLen)
	for i, row := range encoded {
		for j, id := range row {
			inputIDs[i*seqLen+j] = id
			attentionMask[i*seqLen+j] = 1
		}
	}

	shape := ort.NewShape(int64(batch), int64(seqLen))
	idsTensor, err := ort.NewTensor(shape, inputIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}
	defer idsTensor.Destroy()

	maskTensor, err := ort.NewTensor(shape, attentionMask)
	if err != nil {
		return nil, fmt.Errorf("failed to create mask tensor: %w", err)
	}
	defer maskTensor.Destroy()

	// Выходной тензор аллоцируется сессией
	outputs := []ort.Value{nil}
	if err := p.session.Run([]ort.Value{idsTensor, maskTensor}, outputs); err != nil {
		return nil, fmt.Errorf("failed to run sentiment model: %w", err)
	}

	logitsTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, fmt.Errorf("unexpected output tensor type %T", outputs[0])
	}
	defer logitsTensor.Destroy()

	logits := logitsTensor.GetData()
	if len(logits) < batch*2 {
		return nil, fmt.Errorf("unexpected logits size: %d", len(logits))
	}

	predictions := make([]models.SentimentPrediction, batch)
	for i := 0; i < batch; i++ {
		negative := float64(logits[i*2])
		positive := float64(logits[i*2+1])
		predictions[i] = predict(negative, positive)
	}

	return predictions, nil
}

// predict переводит пару логитов [negative, positive] в метку и уверенность.
func predict(negative, positive float64) models.SentimentPrediction {
	// Softmax для двух классов; вычитание максимума для числовой устойчивости
	m := math.Max(negative, positive)
	expNeg := math.Exp(negative - m)
	expPos := math.Exp(positive - m)
	probPos := expPos / (expNeg + expPos)

	if probPos >= 0.5 {
		return models.SentimentPrediction{Label: LabelPositive, Score: probPos}
	}
	return models.SentimentPrediction{Label: LabelNegative, Score: 1 - probPos}
}

// Глобальный экземпляр процессора: модель должна жить в памяти
// одна на процесс независимо от числа сервисов поверх неё.
var (
	processorOnce     sync.Once
	processorInstance *SentimentProcessor
)

// GetSentimentProcessor возвращает процессор-одиночку для всего приложения.
// Конфигурация учитывается только при первом вызове.
func GetSentimentProcessor(cfg *config.Config) *SentimentProcessor {
	processorOnce.Do(func() {
		processorInstance = NewSentimentProcessor(cfg)
	})
	return processorInstance
}
