// Package main provides localization for the animshow CLI.
package main

import (
	"github.com/ideamans/go-l10n"
)

func init() {
	// Register Japanese translations for CLI messages.
	l10n.Register("ja", l10n.LexiconMap{
		// Root command
		"Inspect animated images and render previews, contact sheets and videos.": "アニメーション画像を解析し、プレビュー・コンタクトシート・動画を生成",

		// Subcommands
		"Inspect an animated image and print a summary.": "アニメーション画像を解析してサマリーを表示",
		"Extract a preview frame as a still image.":      "プレビューフレームを静止画として抽出",
		"Compose all frames into a contact sheet.":       "全フレームをコンタクトシートに合成",
		"Export the animation as an MJPEG MP4 video.":    "アニメーションをMJPEG MP4動画としてエクスポート",
		"Show version information.":                      "バージョン情報を表示",
		"animshow version %s":                            "animshow バージョン %s",

		// Arguments
		"Input animation file path.":       "入力アニメーションファイルパス",
		"Output still image file path.":    "出力静止画ファイルパス",
		"Output contact sheet file path.":  "出力コンタクトシートファイルパス",
		"Output MP4 file path.":            "出力MP4ファイルパス",
		"Path to YAML configuration file.": "YAML設定ファイルのパス",

		// Inspect flags
		"Write the summary to a file instead of stdout.": "サマリーを標準出力ではなくファイルに書き込み",
		"Summary format (markdown, json).":               "サマリー形式（markdown, json）",

		// Preview flags
		"Frame index to use as the preview.":               "プレビューに使用するフレーム番号",
		"Maximum preview width in pixels (0 = original size).": "プレビューの最大幅（ピクセル、0 = 元のサイズ）",

		// Sheet flags
		"Number of columns in the grid.":            "グリッドのカラム数",
		"Thumbnail width in pixels.":                "サムネイルの幅（ピクセル）",
		"Gap between thumbnails in pixels.":         "サムネイル間の隙間（ピクセル）",
		"Disable frame index and duration labels.":  "フレーム番号と表示時間のラベルを無効化",
		"Draw a checkerboard backdrop behind transparent frames.": "透過フレームの背後にチェッカーボードを描画",
		"Background color (hex, e.g., #1e1e1e).":    "背景色（16進数、例: #1e1e1e）",
		"Border color (hex, e.g., #505050).":        "枠線の色（16進数、例: #505050）",
		"Number of goroutines scaling thumbnails.":  "サムネイル縮小に使用するゴルーチン数",

		// Export flags
		"JPEG quality for video frames (1-100).":     "動画フレームのJPEG品質（1-100）",
		"Number of times to repeat the animation.":   "アニメーションの繰り返し回数",

		// Debug flags
		"Enable debug output.":         "デバッグ出力を有効化",
		"Directory for debug output.":  "デバッグ出力のディレクトリ",

		// Logging flags
		"Log level (debug, info, warn, error).": "ログレベル（debug, info, warn, error）",
		"Suppress all log output.":              "全てのログ出力を抑制",

		// Runtime messages
		"Summary saved to %s":           "サマリーを %s に保存しました",
		"Interrupted, shutting down...": "中断されました。シャットダウン中...",
	})
}
