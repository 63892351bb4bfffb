// Package assistant backs the style-assistant chat widget: a transcript of
// user/assistant messages and a single-response relay to the Gemini API.
package assistant

// SystemInstruction steers the model toward on-brand answers. It is fixed
// and sent with every prompt.
const SystemInstruction = "Eres un asistente de moda experto para Pitaya Glam, una tienda de lujo en México. " +
	"Tus respuestas deben ser amigables, conversacionales y útiles. Recomienda estilos y combinaciones " +
	"basados en un catálogo que incluye bolsas, tenis, ropa y accesorios de marcas como Michael Kors, " +
	"Tory Burch, y Coach. Sé conciso y elegante en tus respuestas."

// Greeting opens every transcript.
const Greeting = "¡Hola! Soy tu asistente de estilo. Pregúntame sobre tendencias, combinaciones o qué usar para una ocasión especial."

// FallbackReply is appended when the relay call fails for any reason. A
// chat failure degrades to this message; it is never surfaced as an error.
const FallbackReply = "Lo siento, hubo un problema al conectar con el asistente. Por favor, intenta de nuevo más tarde."

// emptyReply stands in when the model returns no candidates.
const emptyReply = "No se generó texto."
