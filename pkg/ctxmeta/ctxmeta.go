// Пакет ctxmeta — нейтральный слой для работы с метаданными запроса,
// которые прокидываются через context.Context (request_id, роль вызывающего,
// trace_id и т.д.). Идея: HTTP-слой, сервисы и логгер зависят от небольшого
// общего пакета, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID ctxKey = "request_id"
	KeyUserRole  ctxKey = "user_role"
)

// RoleManager — роль, которой разрешены мутирующие операции.
// Проверку выполняет транспортный слой; сервисы считают вызывающего
// уже авторизованным.
const RoleManager = "manager"

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithUserRole кладёт роль вызывающего в контекст (если пусто — ничего не делает).
func WithUserRole(ctx context.Context, role string) context.Context {
	if ctx == nil || role == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyUserRole, role)
}

// UserRoleFromContext достаёт роль вызывающего из контекста.
func UserRoleFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyUserRole).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
