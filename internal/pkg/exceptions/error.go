package exceptions

import (
	"fmt"
	"runtime"

	"myhealthcare-service/internal/pkg/constvars"
)

// CustomError carries both the client-facing payload ({detail, code}) and
// the developer-facing message plus caller location for logs.
type CustomError struct {
	StatusCode int      `json:"-"`
	Code       string   `json:"code"`
	Detail     string   `json:"detail"`
	DevMessage string   `json:"-"`
	Location   Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func BuildNewCustomError(err error, statusCode int, code, detail, devMessage string) *CustomError {
	location := getLocation(3)
	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode: statusCode,
		Code:       code,
		Detail:     detail,
		DevMessage: devMessage,
		Location:   location,
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
