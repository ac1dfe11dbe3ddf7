// Package obsclient реализует WebSocket-клиент obs-websocket (протокол v5,
// JSON text frames). Клиент держит одно соединение, проходит handshake
// Hello → Identify → Identified и мультиплексирует на нём параллельные
// запросы, сопоставляя ответы по requestId.
//
// Жизненный цикл:
//   - New(Config) — ничего не подключает.
//   - Connect(ctx) — идемпотентен: живое соединение проверяется ping/pong
//     (ProbeTimeout), мёртвое заново поднимается с полным handshake.
//   - SendRequest(ctx, type, data) — сам вызывает Connect, регистрирует
//     ожидание до записи в сокет и ждёт ответ не дольше RequestTimeout.
//   - Close() — закрывает сокет, ожидающие запросы получают ConnectionError.
//
// Ошибки: ConnectionError, ProtocolError, AuthenticationError, TimeoutError,
// RequestError; каждая матчится errors.Is на свой сентинел (ErrConnection …).
// Никаких ретраев внутри клиента нет.
//
// Пример:
//
//	c := obsclient.New(obsclient.Config{URL: "ws://localhost:4455", Password: pw})
//	defer c.Close()
//
//	v, err := c.GetVersion(ctx)
//	if err != nil { log.Fatal(err) }
//	fmt.Println(v.ObsVersion)
//
//	_, err = c.SendRequest(ctx, "SetCurrentProgramScene", map[string]any{"sceneName": "Game"})
package obsclient
