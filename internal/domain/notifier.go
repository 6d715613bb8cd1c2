package domain

// Notifier es el puerto hacia el transporte de correo. El envío es síncrono y
// su fallo debe propagarse al llamador, nunca silenciarse.
type Notifier interface {
	Send(to, subject, body string) error
}
