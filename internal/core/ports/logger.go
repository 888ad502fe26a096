package ports

// Logger defines the interface for diagnostic output. All of it goes to stderr.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Error(err error)
}
