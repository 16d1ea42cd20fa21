package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")

	ErrInvalidProgressDriver = errors.New("invalid progress driver")
	ErrProgressDSNRequired   = errors.New("progress driver 'sqlite' requires dsn field")
	ErrInvalidProgressUser   = errors.New("progress user is required")
	ErrInvalidTimeout        = errors.New("timeout must be positive")
	ErrInvalidInitialWeek    = errors.New("initial week must be positive")
	ErrServerAddressRequired = errors.New("server address is required")
	ErrInvalidWorkers        = errors.New("reload workers must be positive")
	ErrInvalidLifetime       = errors.New("notification lifetime must be positive")

	ErrCatalogDirNotExist   = errors.New("catalog directory does not exist")
	ErrFailedToReadCatalog  = errors.New("failed to read catalog file")
	ErrFailedToParseCatalog = errors.New("failed to parse catalog file")
	ErrInvalidWeekID        = errors.New("invalid week identifier")
	ErrDuplicateWeek        = errors.New("week defined more than once")
	ErrDuplicateCourse      = errors.New("course title defined more than once in a week")

	ErrWeekNotFound   = errors.New("week not found")
	ErrCourseNotFound = errors.New("course not found")

	ErrProgressUnavailable    = errors.New("progress store unavailable")
	ErrFailedToLoadProgress   = errors.New("failed to load course progress")
	ErrFailedToRecordProgress = errors.New("failed to record course completion")
	ErrEmptyCourseTitle       = errors.New("course title is required")

	ErrUnknownAction   = errors.New("unknown action")
	ErrInvalidArgument = errors.New("invalid action argument")
	ErrNotMounted      = errors.New("view is not mounted")

	ErrContainerNotFound = errors.New("container not found")
	ErrFailedToParseHTML = errors.New("failed to parse html fragment")

	ErrUnknownCommand = errors.New("unknown command")
	ErrNotATerminal   = errors.New("stdout is not a terminal")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
