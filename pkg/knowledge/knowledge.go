package knowledge

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// defaultLegalInfo is the embedded knowledge base, served when no override
// file is configured. The content is the legal FAQ of the Prados de Paraíso
// project and is injected verbatim into system prompts.
const defaultLegalInfo = `
Prados de Paraíso - Información Legal Completa:

1. CONDICIÓN LEGAL DEL PROYECTO:
- 50% del terreno: Propiedad adquirida mediante compraventa de acciones y derechos
- 50% restante: Terreno bajo condición de posesión legítima y mediata

2. DIFERENCIA ENTRE PROPIEDAD Y POSESIÓN:
- Propiedad: Derecho que otorga titularidad legal inscribible en Registros Públicos
- Posesión: Ejercicio de hecho de poderes inherentes a la propiedad

3. PREGUNTAS FRECUENTES:

Q1: ¿Cuándo entregan el título de propiedad?
R: La condición legal es la POSESIÓN. Se entrega contrato de transferencia de posesión. Para obtener título de propiedad, el cliente debe gestionar saneamiento tras completar pago.

Q2: ¿En qué estado se encuentra el lote?
R: Posesión legítima, mediata y de buena fe, respaldada por escrituras públicas desde 1998.

Q3: ¿Tenemos partida registral?
R: No hay partida registral a nombre de la desarrolladora. El predio figura a nombre de DIREFOR (entidad estatal). Esto no representa riesgo ya que poseemos legítimamente desde 1998.

Q4: ¿Tipos de posesión?
R: Legítima (mediata e inmediata) e Ilegítima (buena fe, mala fe, precaria). Nuestra situación: Posesión Legítima Mediata y de Buena Fe.

Q5: ¿Por qué no hay partida registral?
R: Decisión estratégica comercial. La posesión es un derecho reconocido y protegido por ley.

Q6: ¿Procedimiento para sacar partida registral?
R: Vía prescripción adquisitiva de dominio. Requiere asesoría legal especializada. Costos asumidos por el adquirente.

Q7: ¿Garantía al comprar?
R: Marca con trayectoria, posesión legítima respaldada por escrituras públicas, asesoramiento legal especializado (DS Casa Hierro Abogados), convenio con Notaría Tambini, y más de 500 clientes satisfechos.

4. SANEAMIENTO FÍSICO LEGAL:
- Proceso de regularización para acceso a Registros Públicos
- Vía: Prescripción Adquisitiva de Dominio (Usucapión)
- Requisitos: Posesión continua, pacífica y pública

5. RESPALDO LEGAL:
- Notaría Tambini
- Casahierro Abogados
`

// Base holds the current knowledge text.
type Base struct {
	mu     sync.RWMutex
	text   string
	path   string
	logger *slog.Logger
}

// NewBase creates a knowledge base. If path is non-empty, the file content
// replaces the embedded default; a missing or unreadable file is an error so
// misconfigured deployments fail at startup rather than silently serving the
// wrong legal copy.
func NewBase(path string, logger *slog.Logger) (*Base, error) {
	if logger == nil {
		logger = slog.Default().With("component", "knowledge")
	}

	b := &Base{
		text:   defaultLegalInfo,
		path:   path,
		logger: logger,
	}

	if path != "" {
		if err := b.Reload(); err != nil {
			return nil, err
		}
	}

	logger.Info("knowledge base loaded",
		"source", b.sourceName(),
		"chars", len(b.Snapshot()),
	)

	return b, nil
}

// Snapshot returns the current knowledge text.
func (b *Base) Snapshot() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

// Path returns the override file path, empty when the embedded default is
// in use.
func (b *Base) Path() string {
	return b.path
}

// Reload re-reads the override file. It is a no-op for the embedded default.
// On error the previous text is kept.
func (b *Base) Reload() error {
	if b.path == "" {
		return nil
	}

	data, err := os.ReadFile(b.path)
	if err != nil {
		return fmt.Errorf("failed to read knowledge file %q: %w", b.path, err)
	}

	text := strings.TrimSpace(string(data))
	if text == "" {
		return fmt.Errorf("knowledge file %q is empty", b.path)
	}

	b.mu.Lock()
	b.text = text
	b.mu.Unlock()

	b.logger.Info("knowledge base reloaded", "path", b.path, "chars", len(text))
	return nil
}

func (b *Base) sourceName() string {
	if b.path == "" {
		return "embedded"
	}
	return b.path
}
