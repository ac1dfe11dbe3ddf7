// Package tools публикует запросы obs-websocket как MCP-инструменты.
//
// Каждый инструмент obs-<имя> — ровно один SendRequest: аргументы
// инструмента переводятся в requestData (переименования вроде
// enabled → sceneItemEnabled делаются здесь), ответ отдаётся текстом:
//   - успех — responseData в виде JSON с отступами,
//     либо "<RequestType> succeeded", если данных нет;
//   - ошибка — isError-результат "<RequestType> failed: <err>".
//
// Инструменты ничего не ретраят: переподключение делает obsclient
// на следующем запросе.
//
//	srv := tools.NewServer(client, version, log)
//	err := srv.Run(ctx, &mcp.StdioTransport{})
package tools
