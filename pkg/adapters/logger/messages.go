package logger

import "github.com/ideamans/go-l10n"

func init() {
	l10n.Register("ja", l10n.LexiconMap{
		// Orchestration level messages (info)
		"Reading %s":                      "%s を読み込み中",
		"Decoding image (%s)...":          "画像をデコード中 (%s)...",
		"Output saved to %s":              "出力を %s に保存しました",
		"Pipeline completed successfully": "パイプラインが正常に完了しました",
		"Starting pipeline":               "パイプラインを開始します",
		"Interrupted, shutting down...":   "中断されました。シャットダウン中...",

		// Decode stage
		"Decoded %dx%d animation with %d frames":    "%dx%d、%d フレームのアニメーションをデコードしました",
		"Animation loops %d times":                  "アニメーションは %d 回ループします",
		"Decoded all frames eagerly":                "全フレームを事前にデコードしました",

		// Preview stage
		"Extracting preview frame %d":               "プレビューフレーム %d を抽出中",
		"Preview saved: %d bytes":                   "プレビューを保存しました: %d バイト",

		// Sheet stage
		"Composing contact sheet (%d frames, %d columns)": "コンタクトシートを合成中 (%d フレーム, %d カラム)",
		"Contact sheet composed: %dx%d":             "コンタクトシート合成完了: %dx%d",

		// Export stage
		"Exporting %d frames as MJPEG video":        "%d フレームをMJPEG動画としてエクスポート中",
		"Video exported: %d bytes, %d ms":           "動画エクスポート完了: %d バイト, %d ms",

		// Teardown
		"Disposing decode result":                   "デコード結果を破棄します",

		// Errors
		"Failed to read input: %s":                  "入力の読み込みに失敗しました: %s",
		"Failed to decode image: %s":                "画像のデコードに失敗しました: %s",
		"Failed to extract preview: %s":             "プレビューの抽出に失敗しました: %s",
		"Failed to compose contact sheet: %s":       "コンタクトシートの合成に失敗しました: %s",
		"Failed to export video: %s":                "動画のエクスポートに失敗しました: %s",
		"Failed to write output: %s":                "出力の書き込みに失敗しました: %s",
	})
}
