package config

import "errors"

// ErrInvalidConfig оборачивает все ошибки неверной конфигурации:
// вероятности вне [0,1], неположительные счётчики, битые ссылки между уровнями.
var ErrInvalidConfig = errors.New("invalid configuration")
